// Package rosgraph holds the rosgraph_msgs message types.
package rosgraph

import (
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/schema"
)

// Clock publishes the current simulated or reference time.
type Clock struct {
	Clock builtin.Time
}

func init() {
	schema.MustRegister("rosgraph_msgs/msg/Clock", Clock{})
}
