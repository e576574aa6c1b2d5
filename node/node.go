// Package node reads, writes and grows the indexable containers of an
// object graph: arrays and slices, ordered sequences and maps.
//
// Growth rules when forced:
//   - a slice beyond its length is replaced by a longer copy, written back
//     through Container.Replace; arrays [N]T never grow;
//   - a sequence is padded in place with zero values;
//   - a missing map key gets a new instance of the value type.
//
// Elements that are nil are materialized through the Factory when forced.
package node

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"propath/utils"
)

var (
	ErrIndexBounds  = errors.New("index out of bounds")
	ErrInvalidIndex = errors.New("invalid index")
	ErrUnsupported  = errors.New("value is not an indexable container")
	ErrNotWritable  = errors.New("container is not writable")
)

// Structural changes reported to Adapter.Observe.
const (
	ActionGrow        = "grow"
	ActionPad         = "pad"
	ActionMaterialize = "materialize"
	ActionInsert      = "insert"
)

// Converter coerces values into the element and key types of containers.
type Converter interface {
	Convert(src reflect.Value, dst reflect.Type) (reflect.Value, error)
}

// Factory creates default instances for forced access.
type Factory interface {
	New(t reflect.Type) (reflect.Value, error)
}

// Container is an indexable value together with the way to replace it in
// its owner.
type Container struct {
	Value reflect.Value
	// Replace stores a new container in the owner; nil when the container
	// cannot be replaced.
	Replace func(reflect.Value) error
}

// Element is the result of an indexed read.
type Element struct {
	// Value is invalid when the element is absent.
	Value reflect.Value
	// Type is the declared element type of the container.
	Type reflect.Type
	// Set stores a value of Type at the element's position.
	Set func(reflect.Value) error
}

// Adapter performs indexed operations. Converter and Factory are required;
// Observe is optional.
type Adapter struct {
	Converter Converter
	Factory   Factory
	Observe   func(action string, t reflect.Type)
}

// Get reads c[index]. With forced set, a nil element is materialized, and
// unless last is set as well, missing positions and keys are created.
func (a Adapter) Get(c Container, index string, forced, last bool) (Element, error) {
	c.Value = Indirect(c.Value)

	switch Dispatch(c.Value) {
	case ShapeArray:
		return a.getArray(c, index, forced, last)
	case ShapeSequence:
		return a.getSequence(c, index, forced, last)
	case ShapeMap:
		return a.getMap(c, index, forced, last)
	}

	return Element{}, unsupported(c.Value)
}

// Set writes x, converted to the element type, into c[index]. With forced
// set, slices grow, sequences are padded up to index and nil maps are
// allocated.
func (a Adapter) Set(c Container, index string, x reflect.Value, forced bool) error {
	c.Value = Indirect(c.Value)

	switch Dispatch(c.Value) {
	case ShapeArray:
		return a.setArray(c, index, x, forced)
	case ShapeSequence:
		return a.setSequence(c, index, x, forced)
	case ShapeMap:
		return a.setMap(c, index, x, forced)
	}

	return unsupported(c.Value)
}

// Has reports whether index addresses an existing element of c. It never
// modifies c.
func (a Adapter) Has(c Container, index string) (bool, error) {
	v := Indirect(c.Value)

	switch Dispatch(v) {
	case ShapeArray:
		i, err := strconv.Atoi(index)
		if err != nil {
			return false, invalidIndex(index)
		}

		return utils.IsIndex(i, v.Len()), nil

	case ShapeSequence:
		i, err := strconv.Atoi(index)
		if err != nil {
			return false, invalidIndex(index)
		}

		return utils.IsIndex(i, asSequence(v).Len()), nil

	case ShapeMap:
		key, err := a.mapKey(v.Type().Key(), index)
		if err != nil {
			return false, nil
		}

		return v.MapIndex(key).IsValid(), nil
	}

	return false, unsupported(v)
}

// ElemType returns the declared element type of c.
func (a Adapter) ElemType(c Container) (reflect.Type, error) {
	v := Indirect(c.Value)

	switch Dispatch(v) {
	case ShapeArray, ShapeMap:
		return v.Type().Elem(), nil
	case ShapeSequence:
		return asSequence(v).ElemType(), nil
	}

	return nil, unsupported(v)
}

func (a Adapter) observe(action string, t reflect.Type) {
	if a.Observe != nil {
		a.Observe(action, t)
	}
}

// instance creates a default value of t and reports it as materialized.
func (a Adapter) instance(t reflect.Type) (reflect.Value, error) {
	v, err := a.Factory.New(t)
	if err != nil {
		return reflect.Value{}, err
	}

	a.observe(ActionMaterialize, v.Type())

	return v, nil
}

// parseIndex parses a non-negative integer index.
func parseIndex(index string) (int, error) {
	i, err := strconv.Atoi(index)
	if err != nil {
		return 0, invalidIndex(index)
	}

	if i < 0 {
		return 0, fmt.Errorf("%w: negative index %d", ErrIndexBounds, i)
	}

	return i, nil
}

func invalidIndex(index string) error {
	return fmt.Errorf("%w: %q is not an integer", ErrInvalidIndex, index)
}

func outOfBounds(i, n int, t reflect.Type) error {
	return fmt.Errorf("%w: index %d, length %d of %s", ErrIndexBounds, i, n, typeStr(t))
}

func unsupported(v reflect.Value) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: nil", ErrUnsupported)
	}

	return fmt.Errorf("%w: %s", ErrUnsupported, typeStr(v.Type()))
}
