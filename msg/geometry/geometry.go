// Package geometry holds the geometry_msgs message types: points,
// orientations, poses, transforms and their stamped variants.
package geometry

import (
	"github.com/edgefirst/schemas-go/msg/std"
	"github.com/edgefirst/schemas-go/schema"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

type Point struct {
	X float64
	Y float64
	Z float64
}

type Point32 struct {
	X float32
	Y float32
	Z float32
}

type PointStamped struct {
	Header std.Header
	Point  Point
}

type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

type Pose struct {
	Position    Point
	Orientation Quaternion
}

type Pose2D struct {
	X     float64
	Y     float64
	Theta float64
}

type Transform struct {
	Translation Vector3
	Rotation    Quaternion
}

// TransformStamped relates a child frame to the header's frame at the
// header's timestamp.
type TransformStamped struct {
	Header       std.Header
	ChildFrameID string
	Transform    Transform
}

type Twist struct {
	Linear  Vector3
	Angular Vector3
}

type TwistStamped struct {
	Header std.Header
	Twist  Twist
}

type Accel struct {
	Linear  Vector3
	Angular Vector3
}

type AccelStamped struct {
	Header std.Header
	Accel  Accel
}

type Inertia struct {
	M   float64
	Com Vector3
	Ixx float64
	Ixy float64
	Ixz float64
	Iyy float64
	Iyz float64
	Izz float64
}

type InertiaStamped struct {
	Header  std.Header
	Inertia Inertia
}

func init() {
	schema.MustRegister("geometry_msgs/msg/Accel", Accel{})
	schema.MustRegister("geometry_msgs/msg/AccelStamped", AccelStamped{})
	schema.MustRegister("geometry_msgs/msg/Inertia", Inertia{})
	schema.MustRegister("geometry_msgs/msg/InertiaStamped", InertiaStamped{})
	schema.MustRegister("geometry_msgs/msg/Point", Point{})
	schema.MustRegister("geometry_msgs/msg/Point32", Point32{})
	schema.MustRegister("geometry_msgs/msg/PointStamped", PointStamped{})
	schema.MustRegister("geometry_msgs/msg/Pose", Pose{})
	schema.MustRegister("geometry_msgs/msg/Pose2D", Pose2D{})
	schema.MustRegister("geometry_msgs/msg/Quaternion", Quaternion{})
	schema.MustRegister("geometry_msgs/msg/Transform", Transform{})
	schema.MustRegister("geometry_msgs/msg/TransformStamped", TransformStamped{})
	schema.MustRegister("geometry_msgs/msg/Twist", Twist{})
	schema.MustRegister("geometry_msgs/msg/TwistStamped", TwistStamped{})
	schema.MustRegister("geometry_msgs/msg/Vector3", Vector3{})
}
