package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	ErrNotReadable    = errors.New("property is not readable")
	ErrNotWritable    = errors.New("property is not writable")
	ErrNotAddressable = errors.New("value is not addressable")
	ErrAccessor       = errors.New("accessor failed")
)

// Property describes a single named property of a struct type.
type Property struct {
	// Name is the name the property is registered under: the tag name for
	// renamed fields, the Go name otherwise.
	Name string
	// Type is the declared read type: the getter result or the field type.
	Type reflect.Type
	// WriteType is the declared write type: the setter parameter or the
	// field type. Nil for read-only properties.
	WriteType reflect.Type

	field  *reflect.StructField
	getter string
	setter string
	rank   int
}

// Field returns the backing struct field, if any.
func (p *Property) Field() (reflect.StructField, bool) {
	if p.field == nil {
		return reflect.StructField{}, false
	}

	return *p.field, true
}

// Exported reports whether the property is reachable without declared mode.
func (p *Property) Exported() bool {
	return p.getter != "" || p.setter != "" || p.field.IsExported()
}

func (p *Property) Readable(declared bool) bool {
	return p.getter != "" || p.field != nil && (declared || p.field.IsExported())
}

func (p *Property) Writable(declared bool) bool {
	return p.setter != "" || p.field != nil && (declared || p.field.IsExported())
}

// Get reads the property from the struct value v (a struct or a pointer to
// one). A nil embedded pointer on the way to a promoted field reads as an
// invalid value.
func (p *Property) Get(v reflect.Value, declared bool) (reflect.Value, error) {
	if !p.Readable(declared) {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotReadable, p.Name)
	}

	v = addressable(v)

	if p.getter != "" {
		out := v.Addr().MethodByName(p.getter).Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrAccessor, p.getter, out[1].Interface().(error))
		}

		return out[0], nil
	}

	f, err := fieldByIndex(v, p.field.Index, false)
	if err != nil || !f.IsValid() {
		return reflect.Value{}, err
	}

	return expose(f), nil
}

// Set writes x into the property of v, which must be addressable (or a
// non-nil pointer). x must be assignable to WriteType. Nil embedded
// pointers on the way to a promoted field are allocated.
func (p *Property) Set(v, x reflect.Value, declared bool) error {
	if !p.Writable(declared) {
		return fmt.Errorf("%w: %s", ErrNotWritable, p.Name)
	}

	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if !v.CanAddr() {
		return fmt.Errorf("%w: %s of %s", ErrNotAddressable, p.Name, v.Type())
	}

	if p.setter != "" {
		out := v.Addr().MethodByName(p.setter).Call([]reflect.Value{x})
		if len(out) == 1 && !out[0].IsNil() {
			return fmt.Errorf("%w: %s: %w", ErrAccessor, p.setter, out[0].Interface().(error))
		}

		return nil
	}

	f, err := fieldByIndex(v, p.field.Index, true)
	if err != nil {
		return err
	}

	expose(f).Set(x)

	return nil
}

// addressable returns the struct behind v, copying it when it cannot be
// addressed.
func addressable(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.CanAddr() {
		return v
	}

	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)

	return tmp
}

func fieldByIndex(v reflect.Value, index []int, alloc bool) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc {
					return reflect.Value{}, nil
				}

				v = expose(v)
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("%w: nil embedded %s", ErrNotWritable, v.Type())
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, nil
}

// expose lifts the read-only flag of a value reached through unexported
// fields.
func expose(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
