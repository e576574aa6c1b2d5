package bean

import (
	"fmt"
	"reflect"
	"slices"

	"propath/introspect"
	"propath/node"
)

// accessor reads and writes one named property of a container.
type accessor interface {
	// Type is the declared type of the property.
	Type() reflect.Type
	// Get reads the property. Forced access may create it.
	Get(forced, last bool) (slot, error)
	// Set converts x to the property type and writes it.
	Set(x reflect.Value, forced bool) error
	// Has reports whether the property holds a value slot.
	Has() (bool, error)
}

// lookup finds the property name of the container v, which came from s.
// Structs are described by the introspector, maps are addressed by key.
// Every other shape has no named properties.
func (r *resolution) lookup(s slot, v reflect.Value, name string) (accessor, error) {
	switch node.Dispatch(v) {
	case node.ShapeStruct:
		desc, ok := r.u.introspector.Describe(v.Type())
		if !ok {
			break
		}

		p, ok := desc.Property(name)
		if !ok || !p.Readable(r.declared) && !p.Writable(r.declared) {
			return nil, &notFound{name: name, known: r.visible(desc)}
		}

		return &structAccessor{r: r, owner: v, p: p}, nil

	case node.ShapeMap:
		return &mapAccessor{r: r, c: node.Container{Value: v, Replace: r.replacer(s)}, key: name}, nil
	}

	return nil, &notFound{name: name}
}

// visible lists the property names reachable in the current mode.
func (r *resolution) visible(desc *introspect.Descriptor) []string {
	names := desc.Names()

	return slices.DeleteFunc(names, func(n string) bool {
		p, _ := desc.Property(n)
		return !p.Readable(r.declared) && !p.Writable(r.declared)
	})
}

type structAccessor struct {
	r     *resolution
	owner reflect.Value
	p     *introspect.Property
}

func (a *structAccessor) Type() reflect.Type {
	return a.p.Type
}

func (a *structAccessor) slot(v reflect.Value) slot {
	s := slot{value: v, typ: a.p.Type, wtyp: a.p.WriteType}
	if a.p.Writable(a.r.declared) {
		s.write = func(x reflect.Value) error {
			return a.p.Set(a.owner, x, a.r.declared)
		}
	}

	return s
}

// Get materializes a nil value when forced, so forced reads never yield
// nil for a writable property.
func (a *structAccessor) Get(forced, _ bool) (slot, error) {
	v, err := a.p.Get(a.owner, a.r.declared)
	if err != nil {
		return slot{}, err
	}

	s := a.slot(v)
	if !forced || !node.IsNull(v) {
		return s, nil
	}

	if s.write == nil {
		return slot{}, fmt.Errorf("%w: cannot create %s", ErrNotWritable, a.p.Name)
	}

	nv, err := a.r.u.factory.New(a.p.WriteType)
	if err != nil {
		return slot{}, err
	}

	if err := s.write(nv); err != nil {
		return slot{}, err
	}

	a.r.observe(node.ActionMaterialize, nv.Type())
	s.value = nv

	return s, nil
}

func (a *structAccessor) Set(x reflect.Value, _ bool) error {
	if !a.p.Writable(a.r.declared) {
		return fmt.Errorf("%w: %s is read-only", ErrNotWritable, a.p.Name)
	}

	cx, err := a.r.u.converter.Convert(x, a.p.WriteType)
	if err != nil {
		return err
	}

	return a.p.Set(a.owner, cx, a.r.declared)
}

func (a *structAccessor) Has() (bool, error) {
	return a.p.Readable(a.r.declared), nil
}

type mapAccessor struct {
	r   *resolution
	c   node.Container
	key string
}

func (a *mapAccessor) Type() reflect.Type {
	return a.c.Value.Type().Elem()
}

func (a *mapAccessor) Get(forced, last bool) (slot, error) {
	e, err := a.r.adapter.Get(a.c, a.key, forced, last)
	if err != nil {
		return slot{}, err
	}

	return slot{value: e.Value, typ: e.Type, wtyp: e.Type, write: e.Set}, nil
}

func (a *mapAccessor) Set(x reflect.Value, forced bool) error {
	return a.r.adapter.Set(a.c, a.key, x, forced)
}

func (a *mapAccessor) Has() (bool, error) {
	return a.r.adapter.Has(a.c, a.key)
}
