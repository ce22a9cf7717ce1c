// Package cdr implements the CDR wire codec used by all EdgeFirst schema
// runtimes. The format is byte-exact across language implementations:
// the same field values must serialize to identical bytes no matter which
// runtime produced them.
//
// Wire rules:
//
//   - All multi-byte primitives are little-endian and begin at an offset
//     that is a multiple of their size (1/2/4/8). The encoder inserts zero
//     padding to reach alignment; the decoder skips padding without
//     inspecting it.
//   - Text is a 4-byte length prefix (UTF-8 byte count + 1), the bytes,
//     and a mandatory NUL terminator. Empty text is length 1 plus one NUL.
//   - Sequences are a 4-byte element count followed by the elements, each
//     respecting its own alignment. An empty sequence is 4 zero bytes.
//   - Fixed-size arrays are their elements only, with no count prefix.
//   - Records encode their fields in declaration order with no trailing
//     padding. Nothing in the bytes names the shape; callers supply it out
//     of band.
//   - Floats are raw IEEE-754 bit patterns, NaNs included.
//
// Encoding is two-phase: a sizing walk (Size) and a writing walk (Marshal,
// MarshalTo) that run identical traversals, so a reported size always
// matches the bytes subsequently written and encoding is deterministic.
package cdr
