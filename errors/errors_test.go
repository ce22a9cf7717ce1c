package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase and kind only",
			err:  &Error{Phase: PhaseDecode, Kind: KindMalformed},
			want: "[decode] malformed_message",
		},
		{
			name: "with path",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindMalformed,
				Path:  []string{"header", "frame_id"},
			},
			want: "[decode] malformed_message at header.frame_id",
		},
		{
			name: "with go type and detail",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindTypeMismatch,
				GoType: "int",
				Detail: "want int32",
			},
			want: "[compile] type_mismatch: Go type int - want int32",
		},
		{
			name: "with schema",
			err: &Error{
				Phase:  PhaseRegistry,
				Kind:   KindInvalidArgument,
				Schema: "std_msgs/msg/Header",
			},
			want: "[registry] invalid_argument: schema std_msgs/msg/Header",
		},
		{
			name: "with cause",
			err: &Error{
				Phase: PhaseFFI,
				Kind:  KindInvalidArgument,
				Cause: fmt.Errorf("boom"),
			},
			want: "[ffi] invalid_argument (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := New(PhaseEncode, KindOverflow).
		Path("points", "[3]").
		GoType("[]float64").
		Schema("sensor_msgs/msg/PointCloud2").
		Detail("limit is %d", 128).
		Cause(cause).
		Build()

	if err.Phase != PhaseEncode || err.Kind != KindOverflow {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[0] != "points" {
		t.Errorf("path = %v", err.Path)
	}
	if err.Detail != "limit is 128" {
		t.Errorf("detail = %q", err.Detail)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause should unwrap")
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	a := Malformed([]string{"data"}, "bad prefix")
	b := &Error{Phase: PhaseDecode, Kind: KindMalformed}
	c := &Error{Phase: PhaseEncode, Kind: KindMalformed}

	if !stderrors.Is(a, b) {
		t.Error("same phase and kind should match")
	}
	if stderrors.Is(a, c) {
		t.Error("different phase should not match")
	}
	if stderrors.Is(a, fmt.Errorf("plain")) {
		t.Error("plain error should not match")
	}
}

func TestConstructors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		err := Truncated([]string{"stamp"}, 8, 3)
		if err.Kind != KindMalformed || err.Phase != PhaseDecode {
			t.Errorf("got %s/%s", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "need 8 bytes") {
			t.Errorf("detail = %q", err.Detail)
		}
	})

	t.Run("buffer too small", func(t *testing.T) {
		err := BufferTooSmall(100, 10)
		if err.Kind != KindBufferTooSmall {
			t.Errorf("kind = %s", err.Kind)
		}
		if !strings.Contains(err.Detail, "100") || !strings.Contains(err.Detail, "10") {
			t.Errorf("detail = %q", err.Detail)
		}
	})

	t.Run("invalid utf8 truncates preview", func(t *testing.T) {
		data := make([]byte, 100)
		for i := range data {
			data[i] = 0xff
		}
		err := InvalidUTF8(PhaseDecode, nil, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("kind = %s", err.Kind)
		}
		if len(err.Detail) > 120 {
			t.Errorf("preview not truncated: %d chars", len(err.Detail))
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseCompile, []string{"d"}, "[]float32", "slice of float64")
		if err.Kind != KindTypeMismatch || err.GoType != "[]float32" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		err := NotFound(PhaseRegistry, "schema", "x_msgs/msg/Y")
		if !strings.Contains(err.Detail, `"x_msgs/msg/Y"`) {
			t.Errorf("detail = %q", err.Detail)
		}
	})
}
