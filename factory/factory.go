// Package factory creates default instances of Go types for forced path
// resolution.
package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrInstantiation is returned when no instance of a type can be created.
	ErrInstantiation = errors.New("cannot instantiate type")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("nil reflect.Type provided")
	// ErrNilConstructor is returned when a nil constructor is registered.
	ErrNilConstructor = errors.New("nil constructor provided")
	// ErrConflictingRegistration indicates an attempt to re-register a type.
	ErrConflictingRegistration = errors.New("conflicting constructor registration")
)

// GenericMapType is created wherever the element type is unknown.
var GenericMapType = reflect.TypeFor[map[string]any]()

// Constructor returns a fresh instance; the result must be assignable to
// the type it is registered for.
type Constructor func() any

// Registry is the default Factory. Registered constructors take precedence
// over the built-in rules. It is safe for concurrent use.
type Registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to Constructor.
	m sync.Map
	// count tracks the number of registered constructors.
	count int
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register associates a constructor with t. It is an error to register a
// second constructor for the same type.
func (r *Registry) Register(t reflect.Type, ctor Constructor) error {
	if t == nil {
		return ErrNilType
	}
	if ctor == nil {
		return ErrNilConstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m.Load(t); ok {
		return fmt.Errorf("%w: %s", ErrConflictingRegistration, t)
	}

	r.m.Store(t, ctor)
	r.count++

	return nil
}

// Count returns the number of registered constructors.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// New returns a new, non-nil (where the kind allows it) value of type t:
//   - pointers point to a new zero value of their element type;
//   - maps and slices are empty but allocated;
//   - the empty interface yields a generic map[string]any;
//   - structs, arrays and scalars are zero values.
//
// Non-empty interfaces, channels, functions and unsafe pointers can only be
// created through a registered constructor.
func (r *Registry) New(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrInstantiation, ErrNilType)
	}

	if ctor, ok := r.m.Load(t); ok {
		return r.construct(t, ctor.(Constructor))
	}

	switch t.Kind() {
	case reflect.Pointer:
		v := reflect.New(t.Elem())
		if t.Elem().Kind() == reflect.Pointer {
			inner, err := r.New(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}

			v.Elem().Set(inner)
		}

		return v, nil

	case reflect.Map:
		return reflect.MakeMap(t), nil

	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil

	case reflect.Interface:
		if t.NumMethod() == 0 {
			return reflect.MakeMap(GenericMapType), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: interface %s has no registered implementation", ErrInstantiation, t)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Invalid:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrInstantiation, t)

	default:
		return reflect.New(t).Elem(), nil
	}
}

func (r *Registry) construct(t reflect.Type, ctor Constructor) (v reflect.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s: constructor panicked: %v", ErrInstantiation, t, p)
		}
	}()

	res := reflect.ValueOf(ctor())
	if !res.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s: constructor returned nil", ErrInstantiation, t)
	}

	if !res.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s: constructor returned %s", ErrInstantiation, t, res.Type())
	}

	// keep the static type of the slot, e.g. an interface
	out := reflect.New(t).Elem()
	out.Set(res)

	return out, nil
}
