// Package builtin holds the builtin_interfaces message types that every
// other catalog builds on.
package builtin

import "github.com/edgefirst/schemas-go/schema"

const nsecInSec = 1_000_000_000

// Time is a point in time: whole seconds since the epoch plus nanoseconds
// since the start of that second.
type Time struct {
	Sec     int32
	Nanosec uint32
}

// Duration is a signed span of time with nanosecond precision.
type Duration struct {
	Sec     int32
	Nanosec uint32
}

func NewTime(sec int32, nanosec uint32) Time {
	return Time{Sec: sec, Nanosec: nanosec}
}

// TimeFromNanos splits a nanosecond timestamp into seconds and the
// remaining nanoseconds.
func TimeFromNanos(nanos uint64) Time {
	return Time{
		Sec:     int32(nanos / nsecInSec),
		Nanosec: uint32(nanos % nsecInSec),
	}
}

// ToNanos collapses the time back into a single nanosecond count.
func (t Time) ToNanos() uint64 {
	return uint64(t.Sec)*nsecInSec + uint64(t.Nanosec)
}

func init() {
	schema.MustRegister("builtin_interfaces/msg/Time", Time{})
	schema.MustRegister("builtin_interfaces/msg/Duration", Duration{})
}
