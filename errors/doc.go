// Package errors provides structured error types for the schemas library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go type and
// schema names, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformed).
//		Path("header", "frame_id").
//		Detail("length prefix %d exceeds remaining %d bytes", n, rem).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(path, 4, 1)
//	err := errors.InvalidUTF8(errors.PhaseDecode, path, data)
//
// All errors implement the standard error interface and support errors.Is/As.
// The foreign-facing ffi package collapses the precise kinds defined here
// into its closed status-code set; nothing richer than a status crosses that
// boundary.
package errors
