package cdr

import (
	"reflect"
	"sync"

	"github.com/edgefirst/schemas-go/errors"
	"github.com/edgefirst/schemas-go/schema"
)

// CompiledType pairs a schema descriptor node with the concrete Go layout
// that backs it: wire kind on one side, reflect type, size, and field
// offsets on the other. Compilation happens once per (descriptor, Go type)
// pair; the encoder and decoder then walk the compiled tree with raw
// pointer arithmetic.
type CompiledType struct {
	GoType   reflect.Type
	Elem     *CompiledType
	Fields   []CompiledField
	Name     string
	GoSize   uintptr
	ArrayLen int
	// MinWire is the smallest number of bytes a value of this type can
	// occupy, ignoring alignment padding. Decoders use it to reject length
	// prefixes that could not possibly fit in the remaining input before
	// allocating anything.
	MinWire int
	Kind    schema.Kind
}

// CompiledField is one struct member with its Go offset resolved.
type CompiledField struct {
	Type     *CompiledType
	Name     string
	GoOffset uintptr
}

// Compiler validates descriptor/Go-type pairs and caches the result.
// Safe for concurrent use.
type Compiler struct {
	cache sync.Map // cacheKey -> *CompiledType
}

type cacheKey struct {
	desc   *schema.Type
	goType reflect.Type
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile resolves a descriptor against a Go type, validating every field
// along the way. The returned CompiledType is shared and must not be
// mutated.
func (c *Compiler) Compile(desc *schema.Type, goType reflect.Type) (*CompiledType, error) {
	if desc == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompile, "nil descriptor")
	}
	if goType == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompile, "nil Go type")
	}

	key := cacheKey{desc: desc, goType: goType}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(desc, goType, nil)
	if err != nil {
		return nil, err
	}

	c.cache.Store(key, ct)
	return ct, nil
}

var kindToReflect = map[schema.Kind]reflect.Kind{
	schema.Bool:    reflect.Bool,
	schema.Int8:    reflect.Int8,
	schema.Uint8:   reflect.Uint8,
	schema.Int16:   reflect.Int16,
	schema.Uint16:  reflect.Uint16,
	schema.Int32:   reflect.Int32,
	schema.Uint32:  reflect.Uint32,
	schema.Int64:   reflect.Int64,
	schema.Uint64:  reflect.Uint64,
	schema.Float32: reflect.Float32,
	schema.Float64: reflect.Float64,
	schema.String:  reflect.String,
}

func (c *Compiler) compile(desc *schema.Type, goType reflect.Type, path []string) (*CompiledType, error) {
	switch desc.Kind {
	case schema.Sequence:
		if goType.Kind() != reflect.Slice {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "slice")
		}
		elem, err := c.compile(desc.Elem, goType.Elem(), append(path, "[]"))
		if err != nil {
			return nil, err
		}
		return &CompiledType{
			Kind:    schema.Sequence,
			GoType:  goType,
			GoSize:  goType.Size(),
			Elem:    elem,
			MinWire: 4,
		}, nil

	case schema.Array:
		if goType.Kind() != reflect.Array {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "array")
		}
		if goType.Len() != desc.Len {
			return nil, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
				Path(path...).
				GoType(goType.String()).
				Detail("array length %d, descriptor wants %d", goType.Len(), desc.Len).
				Build()
		}
		elem, err := c.compile(desc.Elem, goType.Elem(), append(path, "[]"))
		if err != nil {
			return nil, err
		}
		return &CompiledType{
			Kind:     schema.Array,
			GoType:   goType,
			GoSize:   goType.Size(),
			Elem:     elem,
			ArrayLen: desc.Len,
			MinWire:  desc.Len * elem.MinWire,
		}, nil

	case schema.Struct:
		return c.compileStruct(desc, goType, path)

	case schema.String:
		if goType.Kind() != reflect.String {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "string")
		}
		return &CompiledType{
			Kind:    schema.String,
			GoType:  goType,
			GoSize:  goType.Size(),
			MinWire: 5, // length prefix plus NUL terminator
		}, nil

	default:
		want, ok := kindToReflect[desc.Kind]
		if !ok {
			return nil, errors.Unsupported(errors.PhaseCompile, "descriptor kind "+desc.Kind.String())
		}
		if goType.Kind() != want {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), desc.Kind.String())
		}
		return &CompiledType{
			Kind:    desc.Kind,
			GoType:  goType,
			GoSize:  goType.Size(),
			MinWire: desc.Kind.Size(),
		}, nil
	}
}

func (c *Compiler) compileStruct(desc *schema.Type, goType reflect.Type, path []string) (*CompiledType, error) {
	if goType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "struct")
	}

	ct := &CompiledType{
		Kind:   schema.Struct,
		GoType: goType,
		GoSize: goType.Size(),
		Name:   desc.Name,
		Fields: make([]CompiledField, 0, len(desc.Fields)),
	}

	di := 0
	for i := 0; i < goType.NumField(); i++ {
		sf := goType.Field(i)
		if !sf.IsExported() {
			continue
		}
		if di >= len(desc.Fields) {
			return nil, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
				Path(path...).
				GoType(goType.String()).
				Detail("struct has more exported fields than descriptor %s", desc.Name).
				Build()
		}
		df := desc.Fields[di]
		di++

		fieldType, err := c.compile(df.Type, sf.Type, append(path, df.Name))
		if err != nil {
			return nil, err
		}
		ct.Fields = append(ct.Fields, CompiledField{
			Name:     df.Name,
			GoOffset: sf.Offset,
			Type:     fieldType,
		})
		ct.MinWire += fieldType.MinWire
	}

	if di != len(desc.Fields) {
		return nil, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
			Path(path...).
			GoType(goType.String()).
			Detail("descriptor %s has %d fields, struct provides %d", desc.Name, len(desc.Fields), di).
			Build()
	}

	return ct, nil
}
