package edgefirst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edgefirst/schemas-go/cdr"
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/msg/std"
	"github.com/edgefirst/schemas-go/schema"
)

func TestDateWireLayout(t *testing.T) {
	in := Date{Year: 2026, Month: 8, Day: 30}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	// u16 year plus two u8 fields, no padding needed.
	if len(data) != 4 {
		t.Errorf("len = %d, want 4", len(data))
	}
	var out Date
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v", out)
	}
}

func TestTrackRoundTrip(t *testing.T) {
	in := Track{
		ID:       "track-042",
		Lifetime: 45,
		Created:  builtin.Time{Sec: 123, Nanosec: 456},
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Track
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v", out)
	}
}

func TestDetectRoundTrip(t *testing.T) {
	in := Detect{
		Header:         std.Header{Stamp: builtin.Time{Sec: 100, Nanosec: 200}, FrameID: "camera"},
		InputTimestamp: builtin.Time{Sec: 100, Nanosec: 100},
		ModelTime:      builtin.Time{Sec: 100, Nanosec: 150},
		OutputTime:     builtin.Time{Sec: 100, Nanosec: 190},
		Boxes: []DetectBox2D{
			{
				CenterX: 0.5, CenterY: 0.25, Width: 0.1, Height: 0.2,
				Label: "person", Score: 0.93, Distance: 4.5, Speed: 1.25,
				Track: Track{ID: "p1", Lifetime: 12, Created: builtin.Time{Sec: 99}},
			},
			{
				CenterX: 0.75, CenterY: 0.5, Width: 0.05, Height: 0.08,
				Label: "bicycle", Score: 0.61,
			},
		},
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Detect
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	in := Mask{
		Height:   4,
		Width:    4,
		Length:   16,
		Encoding: "zstd",
		Mask:     []byte{0, 1, 1, 0, 1, 1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 1},
		Boxed:    true,
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Mask
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDmaBufRoundTrip(t *testing.T) {
	in := DmaBuf{
		Header: std.Header{Stamp: builtin.Time{Sec: 7, Nanosec: 8}, FrameID: "camera"},
		PID:    4242,
		FD:     -1,
		Width:  1920,
		Height: 1080,
		Stride: 7680,
		Fourcc: 0x56595559, // YUYV
		Length: 4147200,
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out DmaBuf
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v", out)
	}
}

func TestServiceHeaderRoundTrip(t *testing.T) {
	in := ServiceHeader{GUID: -1234567890123, Seq: 98765}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 16 {
		t.Errorf("len = %d, want 16", len(data))
	}
	var out ServiceHeader
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v", out)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{
		"edgefirst_msgs/msg/Date",
		"edgefirst_msgs/msg/Detect",
		"edgefirst_msgs/msg/DetectBox2D",
		"edgefirst_msgs/msg/DetectTrack",
		"edgefirst_msgs/msg/DmaBuf",
		"edgefirst_msgs/msg/Mask",
		"edgefirst_msgs/msg/ServiceHeader",
	} {
		if !schema.IsSupported(name) {
			t.Errorf("%s not registered", name)
		}
	}
}
