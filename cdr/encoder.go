package cdr

import (
	stderrors "errors"
	"reflect"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/edgefirst/schemas-go/errors"
	"github.com/edgefirst/schemas-go/internal/wire"
	"github.com/edgefirst/schemas-go/schema"
)

// Encoder turns message values into wire bytes. The zero cost of the sizing
// pass comes from running the exact encode walk against a nil destination,
// so a Size call and the MarshalTo that follows it can never disagree.
//
// Encoders are stateless between calls and safe for concurrent use as long
// as each call gets its own destination buffer and no caller mutates a
// message while it is being encoded.
type Encoder struct {
	compiler *Compiler
}

func NewEncoder() *Encoder {
	return &Encoder{compiler: NewCompiler()}
}

// NewEncoderWithCompiler shares a compile cache across encoders/decoders.
func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Size reports the exact number of bytes Marshal would produce for msg.
func (e *Encoder) Size(msg any) (int, error) {
	ct, ptr, err := e.resolve(msg)
	if err != nil {
		return 0, err
	}
	w := &writer{}
	if err := e.encodeValue(ct, ptr, w); err != nil {
		return 0, err
	}
	return w.pos, nil
}

// Marshal encodes msg into a freshly allocated buffer. Encoding the same
// unmodified value twice produces identical bytes.
func (e *Encoder) Marshal(msg any) ([]byte, error) {
	ct, ptr, err := e.resolve(msg)
	if err != nil {
		return nil, err
	}

	sizer := &writer{}
	if err := e.encodeValue(ct, ptr, sizer); err != nil {
		return nil, err
	}

	buf := make([]byte, sizer.pos)
	w := &writer{buf: buf}
	if err := e.encodeValue(ct, ptr, w); err != nil {
		return nil, err
	}
	return buf, nil
}

// MarshalTo encodes msg into a caller-owned buffer and returns the number
// of bytes written. If buf is too short the error carries
// errors.KindBufferTooSmall and the returned count is the required size, so
// the caller can allocate and retry.
func (e *Encoder) MarshalTo(msg any, buf []byte) (int, error) {
	ct, ptr, err := e.resolve(msg)
	if err != nil {
		return 0, err
	}

	sizer := &writer{}
	if err := e.encodeValue(ct, ptr, sizer); err != nil {
		return 0, err
	}
	required := sizer.pos

	if len(buf) < required {
		return required, errors.BufferTooSmall(required, len(buf))
	}

	w := &writer{buf: buf}
	if err := e.encodeValue(ct, ptr, w); err != nil {
		return 0, err
	}
	return w.pos, nil
}

// resolve compiles msg's type and pins an addressable copy of the value,
// returning its base pointer for the unsafe field walk.
func (e *Encoder) resolve(msg any) (*CompiledType, unsafe.Pointer, error) {
	rv := reflect.ValueOf(msg)
	if !rv.IsValid() {
		return nil, nil, errors.InvalidArgument(errors.PhaseEncode, "nil message")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, errors.InvalidArgument(errors.PhaseEncode, "nil message pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil, errors.New(errors.PhaseEncode, errors.KindInvalidArgument).
			GoType(rv.Type().String()).
			Detail("top-level message must be a struct").
			Build()
	}

	desc, err := schema.Of(rv.Type())
	if err != nil {
		return nil, nil, err
	}
	ct, err := e.compiler.Compile(desc, rv.Type())
	if err != nil {
		return nil, nil, err
	}

	if !rv.CanAddr() {
		cp := reflect.New(rv.Type())
		cp.Elem().Set(rv)
		rv = cp.Elem()
	}
	return ct, rv.Addr().UnsafePointer(), nil
}

func (e *Encoder) encodeValue(ct *CompiledType, ptr unsafe.Pointer, w *writer) error {
	switch ct.Kind {
	case schema.Bool:
		w.boolean(*(*bool)(ptr))
	case schema.Int8:
		w.u8(uint8(*(*int8)(ptr)))
	case schema.Uint8:
		w.u8(*(*uint8)(ptr))
	case schema.Int16:
		w.u16(uint16(*(*int16)(ptr)))
	case schema.Uint16:
		w.u16(*(*uint16)(ptr))
	case schema.Int32:
		w.u32(uint32(*(*int32)(ptr)))
	case schema.Uint32:
		w.u32(*(*uint32)(ptr))
	case schema.Int64:
		w.u64(uint64(*(*int64)(ptr)))
	case schema.Uint64:
		w.u64(*(*uint64)(ptr))
	case schema.Float32:
		w.f32(*(*float32)(ptr))
	case schema.Float64:
		w.f64(*(*float64)(ptr))

	case schema.String:
		s := *(*string)(ptr)
		if !utf8.ValidString(s) {
			return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
		}
		if len(s) >= wire.MaxStringBytes {
			return errors.Overflow(errors.PhaseEncode, nil, "string exceeds size limit")
		}
		w.str(s)

	case schema.Sequence:
		return e.encodeSequence(ct, ptr, w)

	case schema.Array:
		base := ptr
		stride := ct.Elem.GoSize
		for i := 0; i < ct.ArrayLen; i++ {
			if err := e.encodeValue(ct.Elem, unsafe.Add(base, uintptr(i)*stride), w); err != nil {
				return prefixPath(err, "["+strconv.Itoa(i)+"]")
			}
		}

	case schema.Struct:
		for i := range ct.Fields {
			f := &ct.Fields[i]
			if err := e.encodeValue(f.Type, unsafe.Add(ptr, f.GoOffset), w); err != nil {
				return prefixPath(err, f.Name)
			}
		}

	default:
		return errors.Unsupported(errors.PhaseEncode, "type kind "+ct.Kind.String())
	}
	return nil
}

func (e *Encoder) encodeSequence(ct *CompiledType, ptr unsafe.Pointer, w *writer) error {
	sv := reflect.NewAt(ct.GoType, ptr).Elem()
	n := sv.Len()
	if n > wire.MaxSequenceLen {
		return errors.Overflow(errors.PhaseEncode, nil, "sequence exceeds element limit")
	}

	w.u32(uint32(n))
	if n == 0 {
		return nil
	}

	// Byte payloads copy in one shot; the wire is byte-order neutral there.
	if ct.Elem.Kind == schema.Uint8 && ct.GoType.Elem().Kind() == reflect.Uint8 {
		w.raw(sv.Bytes())
		return nil
	}

	base := sv.Index(0).Addr().UnsafePointer()
	stride := ct.Elem.GoSize
	for i := 0; i < n; i++ {
		if err := e.encodeValue(ct.Elem, unsafe.Add(base, uintptr(i)*stride), w); err != nil {
			return prefixPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

// prefixPath pushes a field or index name onto a structured error's path as
// it unwinds through the composite walk.
func prefixPath(err error, name string) error {
	var se *errors.Error
	if stderrors.As(err, &se) {
		dup := *se
		dup.Path = append([]string{name}, se.Path...)
		return &dup
	}
	return err
}
