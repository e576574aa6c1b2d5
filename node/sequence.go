package node

import (
	"reflect"
)

var anyType = reflect.TypeFor[any]()

// Sequence is an ordered, growable collection that is mutated in place.
// Implementations may also provide ElemType() reflect.Type to declare the
// type of their elements; otherwise elements are untyped.
type Sequence interface {
	Len() int
	At(i int) any
	SetAt(i int, v any) error
	Append(v any) error
}

type sequence interface {
	Len() int
	At(i int) reflect.Value
	SetAt(i int, v reflect.Value) error
	Append(v reflect.Value) error
	ElemType() reflect.Type
}

func asSequence(v reflect.Value) sequence {
	if v.Type().Implements(sequenceType) {
		return userSequence{v.Interface().(Sequence)}
	}

	return sliceSequence{v}
}

// sliceSequence is a *[]T.
type sliceSequence struct {
	ptr reflect.Value
}

func (s sliceSequence) Len() int { return s.ptr.Elem().Len() }

func (s sliceSequence) At(i int) reflect.Value { return s.ptr.Elem().Index(i) }

func (s sliceSequence) ElemType() reflect.Type { return s.ptr.Type().Elem().Elem() }

func (s sliceSequence) SetAt(i int, v reflect.Value) error {
	s.ptr.Elem().Index(i).Set(v)
	return nil
}

func (s sliceSequence) Append(v reflect.Value) error {
	s.ptr.Elem().Set(reflect.Append(s.ptr.Elem(), v))
	return nil
}

type userSequence struct {
	s Sequence
}

func (s userSequence) Len() int { return s.s.Len() }

func (s userSequence) At(i int) reflect.Value {
	v := reflect.ValueOf(s.s.At(i))
	if !v.IsValid() {
		return reflect.Zero(s.ElemType())
	}

	return v
}

func (s userSequence) SetAt(i int, v reflect.Value) error { return s.s.SetAt(i, valueOf(v)) }

func (s userSequence) Append(v reflect.Value) error { return s.s.Append(valueOf(v)) }

func (s userSequence) ElemType() reflect.Type {
	if typed, ok := s.s.(interface{ ElemType() reflect.Type }); ok && typed.ElemType() != nil {
		return typed.ElemType()
	}

	return anyType
}

func valueOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}

func (a Adapter) getSequence(c Container, index string, forced, last bool) (Element, error) {
	i, err := parseIndex(index)
	if err != nil {
		return Element{}, err
	}

	s := asSequence(c.Value)
	if i >= s.Len() {
		if !forced || last {
			return Element{}, outOfBounds(i, s.Len(), c.Value.Type())
		}

		if err := a.pad(s, i+1); err != nil {
			return Element{}, err
		}
	}

	elem := s.At(i)
	if forced && !last && IsNull(elem) {
		nv, err := a.instance(s.ElemType())
		if err != nil {
			return Element{}, err
		}

		if err := s.SetAt(i, nv); err != nil {
			return Element{}, err
		}

		elem = s.At(i)
	}

	return Element{
		Value: elem,
		Type:  s.ElemType(),
		Set:   func(x reflect.Value) error { return s.SetAt(i, x) },
	}, nil
}

func (a Adapter) setSequence(c Container, index string, x reflect.Value, forced bool) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}

	s := asSequence(c.Value)
	if i >= s.Len() {
		if !forced {
			return outOfBounds(i, s.Len(), c.Value.Type())
		}

		if err := a.pad(s, i+1); err != nil {
			return err
		}
	}

	cx, err := a.Converter.Convert(x, s.ElemType())
	if err != nil {
		return err
	}

	return s.SetAt(i, cx)
}

// pad appends zero elements until s holds n of them.
func (a Adapter) pad(s sequence, n int) error {
	zero := reflect.Zero(s.ElemType())

	for s.Len() < n {
		if err := s.Append(zero); err != nil {
			return err
		}
	}

	a.observe(ActionPad, s.ElemType())

	return nil
}
