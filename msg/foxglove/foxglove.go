// Package foxglove holds the foxglove_msgs annotation and video types
// used by visualization frontends.
package foxglove

import (
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/msg/std"
	"github.com/edgefirst/schemas-go/schema"
)

type Color struct {
	R float64
	G float64
	B float64
	A float64
}

type Point2 struct {
	X float64
	Y float64
}

type CircleAnnotation struct {
	Timestamp    builtin.Time
	Position     Point2
	Diameter     float64
	Thickness    float64
	FillColor    Color
	OutlineColor Color
}

// PointsAnnotation type codes.
const (
	PointsUnknown   uint8 = 0
	PointsPoints    uint8 = 1
	PointsLineLoop  uint8 = 2
	PointsLineStrip uint8 = 3
	PointsLineList  uint8 = 4
)

type PointsAnnotation struct {
	Timestamp     builtin.Time
	Type          uint8
	Points        []Point2
	OutlineColor  Color
	OutlineColors []Color
	FillColor     Color
	Thickness     float64
}

type TextAnnotation struct {
	Timestamp       builtin.Time
	Position        Point2
	Text            string
	FontSize        float64
	TextColor       Color
	BackgroundColor Color
}

type ImageAnnotations struct {
	Circles []CircleAnnotation
	Points  []PointsAnnotation
	Texts   []TextAnnotation
}

type CompressedVideo struct {
	Header std.Header
	Data   []byte
	Format string
}

func init() {
	schema.MustRegister("foxglove_msgs/msg/CompressedVideo", CompressedVideo{})
	schema.MustRegister("foxglove_msgs/msg/ImageAnnotations", ImageAnnotations{})
}
