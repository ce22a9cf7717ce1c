package ffi

import (
	"strings"

	"go.uber.org/zap"

	"github.com/edgefirst/schemas-go/cdr"
	"github.com/edgefirst/schemas-go/schema"
)

// Codec is the foreign-facing buffer protocol over the CDR engine: handle
// lifecycle, the two-phase serialize contract, and owned deserialize
// results. One Codec serves every registered shape; the schema name passed
// per call selects the message type, replacing the per-shape function
// families a C binding would otherwise hand-write.
type Codec struct {
	table   *Table
	encoder *cdr.Encoder
	decoder *cdr.Decoder
}

func NewCodec() *Codec {
	compiler := cdr.NewCompiler()
	return &Codec{
		table:   NewTable(),
		encoder: cdr.NewEncoderWithCompiler(compiler),
		decoder: cdr.NewDecoderWithCompiler(compiler),
	}
}

// New creates a zero-valued message of the named schema and returns an
// owned handle to it. The caller must Release the handle exactly once.
func (c *Codec) New(schemaName string) (Handle, Status) {
	entry, ok := schema.Lookup(schemaName)
	if !ok {
		return 0, StatusInvalidArgument
	}

	h, ok := c.table.Create(schemaName, entry.NewValue())
	if !ok {
		return 0, StatusAllocationFailed
	}
	return h, StatusOK
}

// Release frees a handle. Releasing an unknown or already-freed handle is
// a no-op; releasing a message with outstanding borrowed field handles is
// an invalid argument.
func (c *Codec) Release(h Handle) Status {
	if c.table.Release(h) {
		return StatusOK
	}
	return StatusInvalidArgument
}

// Message returns the Go value behind a handle (a pointer to the message
// struct). The pointer is borrowed: it is valid until the handle is
// released and must not be retained past that.
func (c *Codec) Message(h Handle) (any, Status) {
	v, ok := c.table.Get(h)
	if !ok {
		return nil, StatusInvalidArgument
	}
	return v, StatusOK
}

// Borrow registers a view into a field of an owned message and returns a
// handle for it. The borrowed handle is valid only for the parent's
// lifetime; the parent cannot be released while borrows are outstanding.
func (c *Codec) Borrow(parent Handle, field any) (Handle, Status) {
	if field == nil {
		return 0, StatusInvalidArgument
	}
	h, ok := c.table.Borrow(parent, field)
	if !ok {
		return 0, StatusInvalidArgument
	}
	return h, StatusOK
}

// Serialize implements the two-phase encode contract on a handle:
//
//   - buf == nil: compute and return the required byte count, write nothing.
//   - len(buf) < required: StatusBufferTooSmall, required still reported so
//     the caller can allocate correctly and retry.
//   - otherwise: encode into buf; written == required.
//
// The same unmodified message always produces identical bytes.
func (c *Codec) Serialize(h Handle, buf []byte) (written, required int, st Status) {
	msg, ok := c.table.Get(h)
	if !ok {
		return 0, 0, StatusInvalidArgument
	}

	if buf == nil {
		size, err := c.encoder.Size(msg)
		if err != nil {
			return 0, 0, StatusFromError(err)
		}
		return 0, size, StatusOK
	}

	n, err := c.encoder.MarshalTo(msg, buf)
	if err != nil {
		st := StatusFromError(err)
		if st == StatusBufferTooSmall {
			// MarshalTo reports the required size alongside the error.
			return 0, n, st
		}
		return 0, 0, st
	}
	return n, n, StatusOK
}

// SerializedSize is the size-query phase of Serialize.
func (c *Codec) SerializedSize(h Handle) (int, Status) {
	_, required, st := c.Serialize(h, nil)
	return required, st
}

// Deserialize parses exactly len(data) bytes as the named schema and
// returns an owned handle to the decoded message. Trailing unconsumed
// bytes are not an error; reading past the end of data is. On failure no
// handle is allocated.
func (c *Codec) Deserialize(schemaName string, data []byte) (Handle, Status) {
	if data == nil {
		return 0, StatusInvalidArgument
	}
	entry, ok := schema.Lookup(schemaName)
	if !ok {
		return 0, StatusInvalidArgument
	}

	msg := entry.NewValue()
	if _, err := c.decoder.Decode(data, msg); err != nil {
		Logger().Debug("deserialize failed",
			zap.String("schema", schemaName),
			zap.Int("input_bytes", len(data)),
			zap.Error(err))
		return 0, StatusFromError(err)
	}

	h, ok := c.table.Create(schemaName, msg)
	if !ok {
		return 0, StatusAllocationFailed
	}
	return h, StatusOK
}

// Schema reports the schema name a handle was created under.
func (c *Codec) Schema(h Handle) (string, Status) {
	name, ok := c.table.Schema(h)
	if !ok {
		return "", StatusInvalidArgument
	}
	return name, StatusOK
}

// Live reports the number of live handles, owned and borrowed.
func (c *Codec) Live() int {
	return c.table.Len()
}

// Close invalidates every outstanding handle.
func (c *Codec) Close() {
	c.table.Close()
}

// OwnedString returns a copy of s that shares no storage with the message
// it was read from, for callers that need field text to outlive the
// message handle.
func OwnedString(s string) string {
	return strings.Clone(s)
}
