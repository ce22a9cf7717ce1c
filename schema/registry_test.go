package schema

import (
	"sort"
	"testing"
)

type testPose struct {
	X float64
	Y float64
}

type testOtherPose struct {
	X float32
}

func TestRegisterAndLookup(t *testing.T) {
	const name = "test_msgs/msg/Pose"
	if err := Register(name, testPose{}); err != nil {
		t.Fatal(err)
	}

	e, ok := Lookup(name)
	if !ok {
		t.Fatal("registered schema not found")
	}
	if e.Name != name {
		t.Errorf("Name = %q", e.Name)
	}
	if len(e.Type.Fields) != 2 {
		t.Errorf("descriptor fields = %d", len(e.Type.Fields))
	}

	v := e.NewValue()
	if _, ok := v.(*testPose); !ok {
		t.Errorf("NewValue() = %T, want *testPose", v)
	}

	if !IsSupported(name) {
		t.Error("IsSupported should report registered name")
	}
	if IsSupported("test_msgs/msg/Nope") {
		t.Error("IsSupported should reject unknown name")
	}
}

func TestRegisterPointerPrototype(t *testing.T) {
	const name = "test_msgs/msg/PtrProto"
	if err := Register(name, &testPose{}); err != nil {
		t.Fatal(err)
	}
	e, _ := Lookup(name)
	if e.GoType.Kind().String() != "struct" {
		t.Errorf("GoType = %s, want struct", e.GoType)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	const name = "test_msgs/msg/Dup"
	if err := Register(name, testPose{}); err != nil {
		t.Fatal(err)
	}
	if err := Register(name, testPose{}); err != nil {
		t.Errorf("same type re-registration should be a no-op: %v", err)
	}
	if err := Register(name, testOtherPose{}); err == nil {
		t.Error("conflicting re-registration should fail")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		schema    string
		prototype any
	}{
		{"missing msg segment", "test_msgs/Pose", testPose{}},
		{"too many segments", "a/msg/b/c", testPose{}},
		{"empty package", "/msg/Pose", testPose{}},
		{"empty type", "test_msgs/msg/", testPose{}},
		{"nil prototype", "test_msgs/msg/Nil", nil},
		{"non-struct prototype", "test_msgs/msg/Slice", []uint32{}},
		{"underivable field", "test_msgs/msg/Bad", struct{ V int }{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Register(tt.schema, tt.prototype); err == nil {
				t.Error("Register should fail")
			}
		})
	}
}

func TestParseName(t *testing.T) {
	pkg, typ, ok := ParseName("sensor_msgs/msg/Image")
	if !ok || pkg != "sensor_msgs" || typ != "Image" {
		t.Errorf("ParseName = %q, %q, %v", pkg, typ, ok)
	}
	if _, _, ok := ParseName("sensor_msgs/srv/Image"); ok {
		t.Error("non-msg middle segment should fail")
	}
}

func TestListSorted(t *testing.T) {
	MustRegister("test_msgs/msg/ListA", testPose{})
	MustRegister("test_msgs/msg/ListB", testPose{})

	names := List()
	if !sort.StringsAreSorted(names) {
		t.Error("List should return sorted names")
	}
	found := 0
	for _, n := range names {
		if n == "test_msgs/msg/ListA" || n == "test_msgs/msg/ListB" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("List missing registered names, found %d", found)
	}
}
