package cdr

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/edgefirst/schemas-go/errors"
	"github.com/edgefirst/schemas-go/internal/wire"
)

// writer is the encode-side buffer cursor. With a nil buf it runs in sizing
// mode: the cursor advances through the identical alignment and width
// arithmetic without storing anything, which is how the two-phase buffer
// protocol guarantees the size query matches the bytes later written.
//
// Writers never bounds-check: callers size the destination with a sizing
// pass before the writing pass, so capacity is an invariant here.
type writer struct {
	buf []byte
	pos int
}

func (w *writer) alignTo(align int) {
	next := wire.AlignTo(w.pos, align)
	if w.buf != nil {
		for i := w.pos; i < next; i++ {
			w.buf[i] = 0
		}
	}
	w.pos = next
}

func (w *writer) u8(v uint8) {
	if w.buf != nil {
		w.buf[w.pos] = v
	}
	w.pos++
}

func (w *writer) u16(v uint16) {
	w.alignTo(2)
	if w.buf != nil {
		binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	}
	w.pos += 2
}

func (w *writer) u32(v uint32) {
	w.alignTo(4)
	if w.buf != nil {
		binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	}
	w.pos += 4
}

func (w *writer) u64(v uint64) {
	w.alignTo(8)
	if w.buf != nil {
		binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	}
	w.pos += 8
}

func (w *writer) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

// Floats pass through as raw IEEE-754 bit patterns. No NaN normalization:
// sensor payloads must round-trip bit-identically.
func (w *writer) f32(v float32) { w.u32(math.Float32bits(v)) }
func (w *writer) f64(v float64) { w.u64(math.Float64bits(v)) }

// str emits the 4-byte length prefix (UTF-8 byte count plus one for the
// mandatory NUL terminator), the bytes, and the terminator. The caller has
// already validated the string is well-formed UTF-8.
func (w *writer) str(s string) {
	w.u32(uint32(len(s)) + 1)
	if w.buf != nil {
		copy(w.buf[w.pos:], s)
		w.buf[w.pos+len(s)] = 0
	}
	w.pos += len(s) + 1
}

// raw writes bytes with no prefix and no alignment.
func (w *writer) raw(b []byte) {
	if w.buf != nil {
		copy(w.buf[w.pos:], b)
	}
	w.pos += len(b)
}

// reader is the decode-side cursor over caller-supplied bytes. Every read
// aligns first and bounds-checks before touching the buffer; consuming past
// the supplied length is a malformed-message failure. Trailing unconsumed
// bytes are fine: the format permits embedding inside larger envelopes.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

// alignTo advances the cursor over padding. Skipped bytes are not inspected:
// the format does not require encoders to zero padding, and tightening that
// here would reject bytes produced by already-deployed encoders.
func (r *reader) alignTo(align int) {
	r.pos = wire.AlignTo(r.pos, align)
}

func (r *reader) need(n int) error {
	if r.pos > len(r.data) || n > len(r.data)-r.pos {
		return errors.Truncated(nil, n, r.remaining())
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	r.alignTo(2)
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	r.alignTo(4)
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	r.alignTo(8)
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) boolean() (bool, error) {
	v, err := r.u8()
	return v != 0, err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	return math.Float32frombits(v), err
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	return math.Float64frombits(v), err
}

// str reads a length-prefixed NUL-terminated UTF-8 string. The prefix counts
// the terminator, so zero is never a valid length. Invalid UTF-8 is a decode
// failure, never silently replaced.
func (r *reader) str() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", errors.Malformed(nil, "string length prefix is zero")
	}
	if n > wire.MaxStringBytes {
		return "", errors.Malformed(nil, "string length prefix exceeds limit")
	}
	length := int(n)
	if err := r.need(length); err != nil {
		return "", err
	}
	body := r.data[r.pos : r.pos+length-1]
	if r.data[r.pos+length-1] != 0 {
		return "", errors.Malformed(nil, "string missing NUL terminator")
	}
	if !utf8.Valid(body) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, nil, body)
	}
	r.pos += length
	return string(body), nil
}

// bytes reads n raw bytes into a fresh slice owned by the caller.
func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:])
	r.pos += n
	return out, nil
}
