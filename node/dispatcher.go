package node

import (
	"reflect"
)

var sequenceType = reflect.TypeFor[Sequence]()

// Indirect unwraps interfaces and dereferences pointers down to the value
// they hold. It stops at nil values, at pointers to slices and at Sequence
// implementations, which are containers in their own right.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() {
		if isSequence(v) {
			return v
		}

		if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(sequenceType) {
			return v.Addr()
		}

		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return v
			}

			v = v.Elem()

		case reflect.Pointer:
			if v.IsNil() || v.Type().Elem().Kind() == reflect.Slice {
				return v
			}

			v = v.Elem()

		default:
			return v
		}
	}

	return v
}

// Dispatch reports the shape of v, which is expected to be Indirect already.
func Dispatch(v reflect.Value) ShapeEnum {
	if !v.IsValid() {
		return ShapeUnknown
	}

	if isSequence(v) {
		return ShapeSequence
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return ShapeArray
	case reflect.Map:
		return ShapeMap
	case reflect.Struct:
		return ShapeStruct
	}

	return ShapeUnknown
}

// IsNull reports whether v holds no usable value: invalid, or a nil
// pointer, map, interface, function or channel. Nil slices are empty
// arrays, not null.
func IsNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}

	return false
}

func isSequence(v reflect.Value) bool {
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Type().Elem().Kind() == reflect.Slice {
		return true
	}

	return v.Kind() != reflect.Interface && v.Type().Implements(sequenceType) && !IsNull(v)
}
