package sensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edgefirst/schemas-go/cdr"
	"github.com/edgefirst/schemas-go/msg/builtin"
	"github.com/edgefirst/schemas-go/msg/std"
)

func TestCameraInfoRoundTrip(t *testing.T) {
	in := CameraInfo{
		Header: std.Header{
			Stamp:   builtin.Time{Sec: 100, Nanosec: 50},
			FrameID: "camera_optical",
		},
		Height:          480,
		Width:           640,
		DistortionModel: "plumb_bob",
		D:               []float64{-0.1, 0.01, 0, 0, 0},
		K:               [9]float64{500, 0, 320, 0, 500, 240, 0, 0, 1},
		R:               [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		P:               [12]float64{500, 0, 320, 0, 0, 500, 240, 0, 0, 0, 1, 0},
		BinningX:        1,
		BinningY:        1,
		ROI:             RegionOfInterest{Width: 640, Height: 480},
	}

	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out CameraInfo
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestImageRoundTrip(t *testing.T) {
	in := Image{
		Header:   std.Header{FrameID: "camera"},
		Height:   2,
		Width:    3,
		Encoding: "rgb8",
		Step:     9,
		Data:     []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Image
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNavSatFixRoundTrip(t *testing.T) {
	in := NavSatFix{
		Header:                 std.Header{FrameID: "gps"},
		Status:                 NavSatStatus{Status: StatusFix, Service: ServiceGPS},
		Latitude:               45.5017,
		Longitude:              -73.5673,
		Altitude:               100,
		PositionCovariance:     [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		PositionCovarianceType: CovarianceTypeDiagonalKnown,
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out NavSatFix
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v", out)
	}
}

func TestPointCloud2RoundTrip(t *testing.T) {
	in := PointCloud2{
		Header: std.Header{
			Stamp:   builtin.Time{Sec: 100},
			FrameID: "lidar",
		},
		Height: 1,
		Width:  2,
		Fields: []PointField{
			{Name: "x", Offset: 0, Datatype: PointFieldFloat32, Count: 1},
			{Name: "y", Offset: 4, Datatype: PointFieldFloat32, Count: 1},
			{Name: "z", Offset: 8, Datatype: PointFieldFloat32, Count: 1},
		},
		PointStep: 12,
		RowStep:   24,
		Data:      make([]byte, 24),
		IsDense:   true,
	}
	data, err := cdr.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out PointCloud2
	if err := cdr.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
