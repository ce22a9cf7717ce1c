package schema

// Kind identifies the wire-level type of a descriptor node.
type Kind uint8

const (
	Bool Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	String
	Sequence
	Array
	Struct
)

var kindNames = [...]string{
	Bool:     "bool",
	Int8:     "int8",
	Uint8:    "uint8",
	Int16:    "int16",
	Uint16:   "uint16",
	Int32:    "int32",
	Uint32:   "uint32",
	Int64:    "int64",
	Uint64:   "uint64",
	Float32:  "float32",
	Float64:  "float64",
	String:   "string",
	Sequence: "sequence",
	Array:    "array",
	Struct:   "struct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether the kind is a fixed-width scalar.
func (k Kind) IsPrimitive() bool {
	return k <= Float64
}

// Align returns the wire alignment of the kind's leading bytes.
// Primitives align to their own size; text and sequences align to their
// 4-byte length prefix. Composites have no alignment of their own: their
// fields align individually as the cursor reaches them.
func (k Kind) Align() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32, String, Sequence:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 1
	}
}

// Size returns the wire size of a primitive kind, or 0 for variable-size
// and composite kinds.
func (k Kind) Size() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// Field is one named member of a Struct descriptor. Declaration order is
// the wire order and must never vary across implementations of a shape.
type Field struct {
	Name string
	Type *Type
}

// Type is a declarative descriptor of one message shape or a part of one.
// Descriptors carry no Go-specific information; the cdr compiler pairs a
// descriptor with a concrete Go type to produce an executable codec.
type Type struct {
	Elem   *Type   // element type for Sequence and Array
	Name   string  // struct type name, diagnostics only
	Fields []Field // Struct members in declaration order
	Len    int     // fixed element count for Array
	Kind   Kind
}
