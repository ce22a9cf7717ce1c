package schema

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/edgefirst/schemas-go/errors"
)

// Entry pairs a schema name with its descriptor and Go representation.
type Entry struct {
	GoType reflect.Type
	Type   *Type
	Name   string
}

// NewValue allocates a fresh zero value of the entry's message type and
// returns a pointer to it.
func (e *Entry) NewValue() any {
	return reflect.New(e.GoType).Interface()
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Entry)
)

// Register binds a schema name to a message prototype. The prototype may be
// a value or a pointer; only its type matters. Names follow the
// package/msg/Type convention. Registering the same name twice with the
// same Go type is a no-op; with a different type it is an error.
func Register(name string, prototype any) error {
	if _, _, ok := ParseName(name); !ok {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidArgument).
			Schema(name).
			Detail("schema name must have the form package/msg/Type").
			Build()
	}
	if prototype == nil {
		return errors.InvalidArgument(errors.PhaseRegistry, "nil prototype")
	}

	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidArgument).
			Schema(name).
			GoType(t.String()).
			Detail("prototype must be a struct").
			Build()
	}

	desc, err := Of(t)
	if err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[name]; ok {
		if existing.GoType == t {
			return nil
		}
		return errors.New(errors.PhaseRegistry, errors.KindInvalidArgument).
			Schema(name).
			GoType(t.String()).
			Detail("already registered with Go type %s", existing.GoType).
			Build()
	}

	registry[name] = &Entry{Name: name, Type: desc, GoType: t}
	Logger().Debug("registered schema",
		zap.String("schema", name),
		zap.String("go_type", t.String()),
		zap.Int("fields", len(desc.Fields)))
	return nil
}

// MustRegister is Register for package init blocks; it panics on error.
func MustRegister(name string, prototype any) {
	if err := Register(name, prototype); err != nil {
		panic(err)
	}
}

// Lookup returns the entry for a schema name.
func Lookup(name string) (*Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// IsSupported reports whether a schema name is registered.
func IsSupported(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ParseName splits a package/msg/Type schema name into its package and type
// components. The middle segment must be exactly "msg".
func ParseName(name string) (pkg, typ string, ok bool) {
	parts := strings.Split(name, "/")
	if len(parts) != 3 || parts[1] != "msg" || parts[0] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[0], parts[2], true
}

// List returns all registered schema names in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
