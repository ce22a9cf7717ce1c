// Package std holds the std_msgs message types.
package std

import (
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/schema"
)

// Header carries the timestamp and coordinate frame that stamped
// messages are expressed in.
type Header struct {
	Stamp   builtin.Time
	FrameID string
}

type ColorRGBA struct {
	R float32
	G float32
	B float32
	A float32
}

func init() {
	schema.MustRegister("std_msgs/msg/Header", Header{})
	schema.MustRegister("std_msgs/msg/ColorRGBA", ColorRGBA{})
}
