package convert

import (
	"fmt"
	"reflect"
	"strings"

	"propath/options"
)

func (m *Manager) collection(src reflect.Value, dst reflect.Type) (reflect.Value, bool, error) {
	switch dst.Kind() {
	case reflect.Slice:
		if src.Kind() == reflect.String && src.Type().ConvertibleTo(dst) {
			return src.Convert(dst), true, nil
		}

		if !m.categories.Has(options.CategoryCollection) {
			return reflect.Value{}, false, nil
		}

		switch src.Kind() {
		case reflect.Slice, reflect.Array:
			if src.Kind() == reflect.Slice && src.IsNil() {
				return reflect.Zero(dst), true, nil
			}

			res, err := m.elements(src, dst, src.Len())
			return res, true, err

		case reflect.String:
			res, err := m.elements(splitCSV(src.String()), dst, -1)
			return res, true, err

		case reflect.Map, reflect.Struct:
			return reflect.Value{}, false, nil

		default:
			one := reflect.MakeSlice(reflect.SliceOf(src.Type()), 1, 1)
			one.Index(0).Set(src)

			res, err := m.elements(one, dst, 1)
			return res, true, err
		}

	case reflect.Array:
		if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
			return reflect.Value{}, false, nil
		}

		category := options.CategorySafeArray
		if src.Len() > dst.Len() {
			category = options.CategoryUnsafeArray
		}

		if !m.categories.Has(category) {
			return reflect.Value{}, true, fmt.Errorf("%w: %d elements into %s", ErrTypeConversion, src.Len(), dst)
		}

		res, err := m.elements(src, dst, min(src.Len(), dst.Len()))
		return res, true, err

	case reflect.Map:
		if src.Kind() != reflect.Map || !m.categories.Has(options.CategoryCollection) {
			return reflect.Value{}, false, nil
		}

		if src.IsNil() {
			return reflect.Zero(dst), true, nil
		}

		out := reflect.MakeMapWithSize(dst, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			key, err := m.convert(iter.Key(), dst.Key())
			if err != nil {
				return reflect.Value{}, true, fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			val, err := m.convert(iter.Value(), dst.Elem())
			if err != nil {
				return reflect.Value{}, true, fmt.Errorf("value at %v: %w", iter.Key(), err)
			}

			out.SetMapIndex(key, val)
		}

		return out, true, nil
	}

	return reflect.Value{}, false, nil
}

// elements builds a slice or array of type dst from the first n elements of
// src; n < 0 means all of them.
func (m *Manager) elements(src reflect.Value, dst reflect.Type, n int) (reflect.Value, error) {
	if n < 0 {
		n = src.Len()
	}

	var out reflect.Value
	if dst.Kind() == reflect.Array {
		out = reflect.New(dst).Elem()
	} else {
		out = reflect.MakeSlice(dst, n, n)
	}

	for i := 0; i < n; i++ {
		v, err := m.convert(src.Index(i), dst.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}

		out.Index(i).Set(v)
	}

	return out, nil
}

func splitCSV(s string) reflect.Value {
	if strings.TrimSpace(s) == "" {
		return reflect.ValueOf([]string{})
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return reflect.ValueOf(parts)
}
