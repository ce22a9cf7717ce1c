package schema

import (
	"reflect"
	"testing"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sec", "sec"},
		{"Nanosec", "nanosec"},
		{"FrameID", "frame_id"},
		{"ChildFrameID", "child_frame_id"},
		{"XOffset", "x_offset"},
		{"DoRectify", "do_rectify"},
		{"IsBigendian", "is_bigendian"},
		{"BinningX", "binning_x"},
		{"K", "k"},
		{"ROI", "roi"},
		{"GUID", "guid"},
		{"PositionCovarianceType", "position_covariance_type"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.in); got != tt.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOfPrimitives(t *testing.T) {
	tests := []struct {
		value any
		want  Kind
	}{
		{true, Bool},
		{int8(0), Int8},
		{uint8(0), Uint8},
		{int16(0), Int16},
		{uint16(0), Uint16},
		{int32(0), Int32},
		{uint32(0), Uint32},
		{int64(0), Int64},
		{uint64(0), Uint64},
		{float32(0), Float32},
		{float64(0), Float64},
		{"", String},
	}
	for _, tt := range tests {
		d, err := Of(reflect.TypeOf(tt.value))
		if err != nil {
			t.Fatalf("Of(%T): %v", tt.value, err)
		}
		if d.Kind != tt.want {
			t.Errorf("Of(%T).Kind = %s, want %s", tt.value, d.Kind, tt.want)
		}
	}
}

func TestOfStruct(t *testing.T) {
	type inner struct {
		A uint32
		B string
	}
	type outer struct {
		Stamp  inner
		Values []float64
		Grid   [9]float64
		hidden int // unexported, skipped
		Flag   bool
	}
	_ = outer{}.hidden

	d, err := Of(reflect.TypeOf(outer{}))
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != Struct {
		t.Fatalf("kind = %s", d.Kind)
	}
	if len(d.Fields) != 4 {
		t.Fatalf("fields = %d, want 4 (unexported skipped)", len(d.Fields))
	}
	if d.Fields[0].Name != "stamp" || d.Fields[0].Type.Kind != Struct {
		t.Errorf("field 0 = %s %s", d.Fields[0].Name, d.Fields[0].Type.Kind)
	}
	if d.Fields[1].Name != "values" || d.Fields[1].Type.Kind != Sequence ||
		d.Fields[1].Type.Elem.Kind != Float64 {
		t.Errorf("field 1 = %+v", d.Fields[1])
	}
	if d.Fields[2].Type.Kind != Array || d.Fields[2].Type.Len != 9 {
		t.Errorf("field 2 = %+v", d.Fields[2].Type)
	}
	if d.Fields[3].Name != "flag" {
		t.Errorf("field 3 = %s", d.Fields[3].Name)
	}
}

func TestOfCaches(t *testing.T) {
	type cached struct{ V uint32 }
	a, err := Of(reflect.TypeOf(cached{}))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Of(reflect.TypeOf(cached{}))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("repeated Of should return the cached descriptor")
	}
}

func TestOfRejectsUnrepresentable(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"platform int", struct{ V int }{}},
		{"platform uint", struct{ V uint }{}},
		{"pointer", struct{ V *uint32 }{}},
		{"map", struct{ V map[string]uint32 }{}},
		{"interface", struct{ V any }{}},
		{"chan", struct{ V chan int }{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Of(reflect.TypeOf(tt.value)); err == nil {
				t.Errorf("Of(%T) should fail", tt.value)
			}
		})
	}
}
