package schema

import (
	"reflect"
	"sync"
	"unicode"

	"github.com/edgefirst/schemas-go/errors"
)

var deriveCache sync.Map // reflect.Type -> *Type

// Of derives the wire descriptor for a Go type. Struct fields map in
// declaration order; unexported fields are skipped. Results are cached per
// reflect.Type, so repeated calls are cheap.
//
// Only fixed-width Go types are representable on the wire: bool, sized
// integers, float32/float64, string, and slices, arrays, and structs of
// those. Platform-sized int/uint, pointers, maps, and interfaces have no
// wire encoding and are rejected.
func Of(t reflect.Type) (*Type, error) {
	if cached, ok := deriveCache.Load(t); ok {
		return cached.(*Type), nil
	}

	d, err := derive(t, nil)
	if err != nil {
		return nil, err
	}

	deriveCache.Store(t, d)
	return d, nil
}

// MustOf is Of for static catalogs; it panics on underivable types.
func MustOf(t reflect.Type) *Type {
	d, err := Of(t)
	if err != nil {
		panic(err)
	}
	return d
}

func derive(t reflect.Type, path []string) (*Type, error) {
	switch t.Kind() {
	case reflect.Bool:
		return &Type{Kind: Bool}, nil
	case reflect.Int8:
		return &Type{Kind: Int8}, nil
	case reflect.Uint8:
		return &Type{Kind: Uint8}, nil
	case reflect.Int16:
		return &Type{Kind: Int16}, nil
	case reflect.Uint16:
		return &Type{Kind: Uint16}, nil
	case reflect.Int32:
		return &Type{Kind: Int32}, nil
	case reflect.Uint32:
		return &Type{Kind: Uint32}, nil
	case reflect.Int64:
		return &Type{Kind: Int64}, nil
	case reflect.Uint64:
		return &Type{Kind: Uint64}, nil
	case reflect.Float32:
		return &Type{Kind: Float32}, nil
	case reflect.Float64:
		return &Type{Kind: Float64}, nil
	case reflect.String:
		return &Type{Kind: String}, nil

	case reflect.Slice:
		elem, err := derive(t.Elem(), append(path, "[]"))
		if err != nil {
			return nil, err
		}
		return &Type{Kind: Sequence, Elem: elem}, nil

	case reflect.Array:
		elem, err := derive(t.Elem(), append(path, "[]"))
		if err != nil {
			return nil, err
		}
		return &Type{Kind: Array, Elem: elem, Len: t.Len()}, nil

	case reflect.Struct:
		fields := make([]Field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := snakeCase(sf.Name)
			ft, err := derive(sf.Type, append(path, name))
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: name, Type: ft})
		}
		return &Type{Kind: Struct, Name: t.Name(), Fields: fields}, nil

	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(t.String()).
			Detail("type has no wire representation").
			Build()
	}
}

// snakeCase converts a Go field name to its conventional wire name:
// FrameID -> frame_id, NavSatFix -> nav_sat_fix, Pose2D -> pose2d.
func snakeCase(name string) string {
	runes := []rune(name)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (nextLower && runes[i-1] != '_' && unicode.IsLetter(runes[i-1]))) {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
