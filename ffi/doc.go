// Package ffi exposes the message codec through an opaque-handle surface
// suitable for binding from C or any foreign runtime.
//
// Messages live behind uint32 handles in a Codec's table. A handle is
// either owned (created by New or Deserialize, freed by Release) or
// borrowed (a field view registered with Borrow, pinned to its parent's
// lifetime). Serialize follows a two-phase contract: a nil buffer is a
// size query, a short buffer reports the required size without writing,
// and a sufficient buffer receives the encoded bytes.
//
// Every operation reports a Status from a small closed set instead of a
// Go error, so the values map directly onto foreign error codes.
package ffi
