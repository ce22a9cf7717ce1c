// Package schemas provides the EdgeFirst message schemas and the CDR wire
// codec they share across language runtimes.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	schemas-go/          Root package, documentation only
//	├── cdr/             CDR wire codec: descriptor compiler, encoder, decoder
//	├── schema/          Descriptor derivation and the name -> type registry
//	├── ffi/             Opaque-handle surface for foreign callers
//	├── errors/          Structured error types for debugging
//	└── msg/             Message catalogs (builtin, std, geometry, sensor,
//	                     rosgraph, foxglove, edgefirst)
//
// # Quick Start
//
// Encode and decode a registered message:
//
//	hdr := std.Header{
//	    Stamp:   builtin.Time{Sec: 100},
//	    FrameID: "camera",
//	}
//
//	data, err := cdr.Marshal(hdr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var back std.Header
//	if err := cdr.Unmarshal(data, &back); err != nil {
//	    log.Fatal(err)
//	}
//
// Messages are plain structs; any struct of fixed-width scalars, strings,
// slices, arrays, and nested structs encodes without registration. The
// schema registry adds name-based lookup for the ffi surface:
//
//	entry, ok := schema.Lookup("sensor_msgs/msg/Image")
//
// # Wire Compatibility
//
// The codec is byte-exact with the other EdgeFirst schema runtimes: the
// same field values produce identical bytes in every implementation. See
// the cdr package documentation for the wire rules.
package schemas
