// Package edgefirst holds the EdgeFirst vendor message types.
package edgefirst

import (
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/msg/std"
	"github.com/edgefirst/schemas-go/schema"
)

type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// Track identifies a tracked detection across frames.
type Track struct {
	ID       string
	Lifetime int32
	Created  builtin.Time
}

// DetectBox2D is one detected object: a normalized box, its label and
// score, and the track that carries it across frames.
type DetectBox2D struct {
	CenterX  float32
	CenterY  float32
	Width    float32
	Height   float32
	Label    string
	Score    float32
	Distance float32
	Speed    float32
	Track    Track
}

// Detect is one model inference result: the boxes found in a frame plus
// the timestamps of the input, model, and output stages.
type Detect struct {
	Header         std.Header
	InputTimestamp builtin.Time
	ModelTime      builtin.Time
	OutputTime     builtin.Time
	Boxes          []DetectBox2D
}

// Mask is a segmentation mask over a frame. Boxed reports whether the
// mask applies per detection box rather than to the whole frame.
type Mask struct {
	Height   uint32
	Width    uint32
	Length   uint32
	Encoding string
	Mask     []byte
	Boxed    bool
}

// DmaBuf describes a dma-buf frame shared between processes: the
// exporting pid, its file descriptor, and the buffer geometry.
type DmaBuf struct {
	Header std.Header
	PID    uint32
	FD     int32
	Width  uint32
	Height uint32
	Stride uint32
	Fourcc uint32
	Length uint32
}

// ServiceHeader prefixes service payloads carried over a raw transport,
// pairing the caller's GUID with a per-caller sequence number.
type ServiceHeader struct {
	GUID int64
	Seq  uint64
}

func init() {
	schema.MustRegister("edgefirst_msgs/msg/Date", Date{})
	schema.MustRegister("edgefirst_msgs/msg/Detect", Detect{})
	schema.MustRegister("edgefirst_msgs/msg/DetectBox2D", DetectBox2D{})
	schema.MustRegister("edgefirst_msgs/msg/DetectTrack", Track{})
	schema.MustRegister("edgefirst_msgs/msg/DmaBuf", DmaBuf{})
	schema.MustRegister("edgefirst_msgs/msg/Mask", Mask{})
	schema.MustRegister("edgefirst_msgs/msg/ServiceHeader", ServiceHeader{})
}
