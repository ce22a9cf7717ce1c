package cdr

import (
	"reflect"
	"strconv"
	"unsafe"

	"github.com/edgefirst/schemas-go/errors"
	"github.com/edgefirst/schemas-go/internal/wire"
	"github.com/edgefirst/schemas-go/schema"
)

// Decoder parses wire bytes into message values. A decode either fully
// populates a fresh value or fails and discards the partial result; the
// caller's destination is only written on success.
//
// Nothing in the bytes identifies a shape: the caller pairs input with the
// right message type out of band. Decoding against the wrong shape fails
// with a malformed-message error at best, or yields wrong values if the
// shapes happen to share a compatible prefix.
type Decoder struct {
	compiler *Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{compiler: NewCompiler()}
}

// NewDecoderWithCompiler shares a compile cache across encoders/decoders.
func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Decode parses data into out, which must be a non-nil pointer to a message
// struct. It returns the number of bytes consumed; trailing bytes beyond
// the decoded value are not an error.
func (d *Decoder) Decode(data []byte, out any) (int, error) {
	rv := reflect.ValueOf(out)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, errors.InvalidArgument(errors.PhaseDecode, "destination must be a non-nil pointer")
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidArgument).
			GoType(elem.Type().String()).
			Detail("top-level message must be a struct").
			Build()
	}

	desc, err := schema.Of(elem.Type())
	if err != nil {
		return 0, err
	}
	ct, err := d.compiler.Compile(desc, elem.Type())
	if err != nil {
		return 0, err
	}

	// Decode into scratch storage so a mid-field failure cannot leave the
	// caller's value half-populated.
	scratch := reflect.New(elem.Type())
	r := &reader{data: data}
	if err := d.decodeValue(ct, scratch.UnsafePointer(), r); err != nil {
		return 0, err
	}

	elem.Set(scratch.Elem())
	return r.pos, nil
}

func (d *Decoder) decodeValue(ct *CompiledType, ptr unsafe.Pointer, r *reader) error {
	switch ct.Kind {
	case schema.Bool:
		v, err := r.boolean()
		if err != nil {
			return err
		}
		*(*bool)(ptr) = v
	case schema.Int8:
		v, err := r.u8()
		if err != nil {
			return err
		}
		*(*int8)(ptr) = int8(v)
	case schema.Uint8:
		v, err := r.u8()
		if err != nil {
			return err
		}
		*(*uint8)(ptr) = v
	case schema.Int16:
		v, err := r.u16()
		if err != nil {
			return err
		}
		*(*int16)(ptr) = int16(v)
	case schema.Uint16:
		v, err := r.u16()
		if err != nil {
			return err
		}
		*(*uint16)(ptr) = v
	case schema.Int32:
		v, err := r.u32()
		if err != nil {
			return err
		}
		*(*int32)(ptr) = int32(v)
	case schema.Uint32:
		v, err := r.u32()
		if err != nil {
			return err
		}
		*(*uint32)(ptr) = v
	case schema.Int64:
		v, err := r.u64()
		if err != nil {
			return err
		}
		*(*int64)(ptr) = int64(v)
	case schema.Uint64:
		v, err := r.u64()
		if err != nil {
			return err
		}
		*(*uint64)(ptr) = v
	case schema.Float32:
		v, err := r.f32()
		if err != nil {
			return err
		}
		*(*float32)(ptr) = v
	case schema.Float64:
		v, err := r.f64()
		if err != nil {
			return err
		}
		*(*float64)(ptr) = v

	case schema.String:
		s, err := r.str()
		if err != nil {
			return err
		}
		*(*string)(ptr) = s

	case schema.Sequence:
		return d.decodeSequence(ct, ptr, r)

	case schema.Array:
		base := ptr
		stride := ct.Elem.GoSize
		for i := 0; i < ct.ArrayLen; i++ {
			if err := d.decodeValue(ct.Elem, unsafe.Add(base, uintptr(i)*stride), r); err != nil {
				return prefixPath(err, "["+strconv.Itoa(i)+"]")
			}
		}

	case schema.Struct:
		for i := range ct.Fields {
			f := &ct.Fields[i]
			if err := d.decodeValue(f.Type, unsafe.Add(ptr, f.GoOffset), r); err != nil {
				return prefixPath(err, f.Name)
			}
		}

	default:
		return errors.Unsupported(errors.PhaseDecode, "type kind "+ct.Kind.String())
	}
	return nil
}

func (d *Decoder) decodeSequence(ct *CompiledType, ptr unsafe.Pointer, r *reader) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	if count > wire.MaxSequenceLen {
		return errors.Malformed(nil, "sequence length prefix exceeds limit")
	}
	n := int(count)

	// The in-memory footprint can outgrow the wire footprint: a nested
	// slice costs 24 bytes of Go memory per 4-byte length prefix. Bound
	// the allocation itself before looking at the input.
	alloc, ok := wire.SafeMul(n, int(ct.Elem.GoSize))
	if !ok || alloc > wire.MaxAlloc {
		return errors.Malformed(nil,
			"sequence length prefix "+strconv.Itoa(n)+" exceeds allocation limit")
	}

	// Reject lengths that cannot fit before allocating: an adversarial
	// prefix must fail cleanly, not exhaust memory.
	need, ok := wire.SafeMul(n, ct.Elem.MinWire)
	if !ok || need > r.remaining() {
		return errors.Malformed(nil,
			"sequence length prefix "+strconv.Itoa(n)+" exceeds remaining input")
	}

	sv := reflect.NewAt(ct.GoType, ptr).Elem()
	if n == 0 {
		sv.Set(reflect.MakeSlice(ct.GoType, 0, 0))
		return nil
	}

	if ct.Elem.Kind == schema.Uint8 && ct.GoType.Elem().Kind() == reflect.Uint8 {
		b, err := r.bytes(n)
		if err != nil {
			return err
		}
		sv.SetBytes(b)
		return nil
	}

	sv.Set(reflect.MakeSlice(ct.GoType, n, n))
	base := sv.Index(0).Addr().UnsafePointer()
	stride := ct.Elem.GoSize
	for i := 0; i < n; i++ {
		if err := d.decodeValue(ct.Elem, unsafe.Add(base, uintptr(i)*stride), r); err != nil {
			return prefixPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}
