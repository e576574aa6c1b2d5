package node

import (
	"fmt"
	"reflect"
)

func (a Adapter) getMap(c Container, index string, forced, last bool) (Element, error) {
	m := c.Value
	mt := m.Type()

	key, err := a.mapKey(mt.Key(), index)
	if err != nil {
		// an unconvertible key cannot be present
		return Element{Type: mt.Elem()}, nil
	}

	val := m.MapIndex(key)
	if forced && !last && IsNull(val) {
		if m.IsNil() {
			if m, err = a.makeMap(c); err != nil {
				return Element{}, err
			}
		}

		nv, err := a.instance(mt.Elem())
		if err != nil {
			return Element{}, err
		}

		m.SetMapIndex(key, nv)
		a.observe(ActionInsert, mt)

		val = m.MapIndex(key)
	}

	return Element{
		Value: val,
		Type:  mt.Elem(),
		Set:   func(x reflect.Value) error { return storeKey(m, key, x) },
	}, nil
}

func (a Adapter) setMap(c Container, index string, x reflect.Value, forced bool) error {
	m := c.Value
	mt := m.Type()

	key, err := a.mapKey(mt.Key(), index)
	if err != nil {
		return err
	}

	cx, err := a.Converter.Convert(x, mt.Elem())
	if err != nil {
		return err
	}

	if m.IsNil() && forced {
		if m, err = a.makeMap(c); err != nil {
			return err
		}
	}

	return storeKey(m, key, cx)
}

// mapKey converts index into a key of type kt. Keys of string kind are
// taken verbatim.
func (a Adapter) mapKey(kt reflect.Type, index string) (reflect.Value, error) {
	raw := reflect.ValueOf(index)

	switch {
	case kt.Kind() == reflect.String:
		return raw.Convert(kt), nil
	case kt.Kind() == reflect.Interface && raw.Type().AssignableTo(kt):
		return raw, nil
	}

	return a.Converter.Convert(raw, kt)
}

// makeMap replaces the nil map held by c with an empty one.
func (a Adapter) makeMap(c Container) (reflect.Value, error) {
	if c.Replace == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil %s", ErrNotWritable, typeStr(c.Value.Type()))
	}

	m := reflect.MakeMap(c.Value.Type())
	if err := c.Replace(m); err != nil {
		return reflect.Value{}, err
	}

	a.observe(ActionMaterialize, m.Type())

	return m, nil
}

func storeKey(m, key, x reflect.Value) error {
	if m.IsNil() {
		return fmt.Errorf("%w: nil %s", ErrNotWritable, typeStr(m.Type()))
	}

	m.SetMapIndex(key, x)

	return nil
}
