package node

import (
	"fmt"
	"reflect"
)

func (a Adapter) getArray(c Container, index string, forced, last bool) (Element, error) {
	i, err := parseIndex(index)
	if err != nil {
		return Element{}, err
	}

	v := c.Value
	if i >= v.Len() {
		if !forced || last {
			return Element{}, outOfBounds(i, v.Len(), v.Type())
		}

		if v, err = a.grow(c, i); err != nil {
			return Element{}, err
		}
	}

	elem := v.Index(i)
	if forced && IsNull(elem) {
		if !elem.CanSet() {
			return Element{}, fmt.Errorf("%w: element %d of %s", ErrNotWritable, i, typeStr(v.Type()))
		}

		nv, err := a.instance(elem.Type())
		if err != nil {
			return Element{}, err
		}

		elem.Set(nv)
	}

	return Element{
		Value: elem,
		Type:  v.Type().Elem(),
		Set:   func(x reflect.Value) error { return storeIndex(v, i, x) },
	}, nil
}

func (a Adapter) setArray(c Container, index string, x reflect.Value, forced bool) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}

	v := c.Value
	if i >= v.Len() {
		if !forced {
			return outOfBounds(i, v.Len(), v.Type())
		}

		if v, err = a.grow(c, i); err != nil {
			return err
		}
	}

	cx, err := a.Converter.Convert(x, v.Type().Elem())
	if err != nil {
		return err
	}

	return storeIndex(v, i, cx)
}

// grow replaces the slice held by c with a copy of length i+1.
func (a Adapter) grow(c Container, i int) (reflect.Value, error) {
	v := c.Value
	if v.Kind() == reflect.Array {
		return reflect.Value{}, outOfBounds(i, v.Len(), v.Type())
	}

	if c.Replace == nil {
		return reflect.Value{}, fmt.Errorf("%w: cannot grow %s to %d", ErrNotWritable, typeStr(v.Type()), i+1)
	}

	grown := reflect.MakeSlice(v.Type(), i+1, i+1)
	reflect.Copy(grown, v)

	if err := c.Replace(grown); err != nil {
		return reflect.Value{}, err
	}

	a.observe(ActionGrow, v.Type())

	return grown, nil
}

func storeIndex(v reflect.Value, i int, x reflect.Value) error {
	elem := v.Index(i)
	if !elem.CanSet() {
		return fmt.Errorf("%w: element %d of %s", ErrNotWritable, i, typeStr(v.Type()))
	}

	elem.Set(x)

	return nil
}
