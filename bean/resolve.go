package bean

import (
	"fmt"
	"reflect"
	"slices"

	"propath/node"
	"propath/segment"
)

// target is where a resolved path ends: a named property or an index of
// the owner.
type target struct {
	owner   slot
	name    string
	index   string
	indexed bool
}

// self reports whether the target is the owner itself.
func (t target) self() bool {
	return !t.indexed && isSelf(t.name)
}

func isSelf(name string) bool {
	return name == "" || name == segment.ThisRef
}

// peel splits a segment into its property name and its chain of indexes,
// outermost first: "grid[1][2]" gives "grid" and [1 2].
func peel(s segment.Segment) (string, []string) {
	var indexes []string

	for s.HasIndex {
		indexes = append(indexes, s.Index)
		s, _ = s.Inner()
	}

	slices.Reverse(indexes)

	return s.Name, indexes
}

// resolve walks every step of path but the final one and returns where
// the path ends.
func (r *resolution) resolve(root slot) (target, error) {
	path := segment.Split(r.path)
	cur := root

	for i, seg := range path {
		r.seg = seg
		r.first = i == 0
		r.last = i == len(path)-1

		name, indexes := peel(seg)
		if r.last && len(indexes) == 0 {
			return target{owner: cur, name: name}, nil
		}

		next, err := r.simple(cur, name)
		if err != nil {
			return target{}, err
		}

		cur = next

		for j, index := range indexes {
			if r.last && j == len(indexes)-1 {
				return target{owner: cur, index: index, indexed: true}, nil
			}

			if cur, err = r.indexed(cur, index); err != nil {
				return target{}, err
			}
		}
	}

	// unreachable: Split always yields at least one segment
	return target{owner: cur}, nil
}

// simple descends into the property name of the value held by s.
func (r *resolution) simple(s slot, name string) (slot, error) {
	if isSelf(name) {
		return s, nil
	}

	v := r.enter(s)
	if err := r.nonNull(v, name); err != nil {
		return slot{}, err
	}

	acc, err := r.lookup(s, v, name)
	if err != nil {
		return slot{}, err
	}

	return acc.Get(r.forced, false)
}

// indexed descends into element index of the container held by s.
func (r *resolution) indexed(s slot, index string) (slot, error) {
	e, err := r.adapter.Get(r.container(s), index, r.forced, false)
	if err != nil {
		return slot{}, err
	}

	return slot{value: e.Value, typ: e.Type, wtyp: e.Type, write: e.Set}, nil
}

// nonNull rejects nil values, except maps, which read as empty.
func (r *resolution) nonNull(v reflect.Value, name string) error {
	if v.IsValid() && (v.Kind() == reflect.Map || !node.IsNull(v)) {
		return nil
	}

	if r.first {
		return ErrNilRoot
	}

	return fmt.Errorf("%w: cannot read %q of nil", ErrPropertyNotFound, name)
}

// accessor returns the accessor for a named target.
func (r *resolution) accessor(t target) (accessor, error) {
	v := r.enter(t.owner)
	if err := r.nonNull(v, t.name); err != nil {
		return nil, err
	}

	return r.lookup(t.owner, v, t.name)
}

func (r *resolution) get(t target) (reflect.Value, error) {
	if t.self() {
		return t.owner.value, nil
	}

	if t.indexed {
		e, err := r.adapter.Get(r.container(t.owner), t.index, r.forced, true)
		return e.Value, err
	}

	acc, err := r.accessor(t)
	if err != nil {
		return reflect.Value{}, err
	}

	s, err := acc.Get(r.forced, true)

	return s.value, err
}

func (r *resolution) set(t target, x reflect.Value) error {
	if t.self() {
		return r.assign(t.owner, x)
	}

	if t.indexed {
		return r.adapter.Set(r.container(t.owner), t.index, x, r.forced)
	}

	acc, err := r.accessor(t)
	if err != nil {
		return err
	}

	return acc.Set(x, r.forced)
}

func (r *resolution) has(t target) (bool, error) {
	if t.self() {
		return !node.IsNull(t.owner.value), nil
	}

	if t.indexed {
		return r.adapter.Has(r.container(t.owner), t.index)
	}

	acc, err := r.accessor(t)
	if err != nil {
		return false, err
	}

	return acc.Has()
}

// typeOf returns the declared type of the target. Interface types are
// refined to the dynamic type of the value, if there is one.
func (r *resolution) typeOf(t target) (reflect.Type, error) {
	var (
		declared reflect.Type
		value    reflect.Value
	)

	switch {
	case t.self():
		declared, value = t.owner.typ, t.owner.value

	case t.indexed:
		c := r.container(t.owner)

		et, err := r.adapter.ElemType(c)
		if err != nil {
			return nil, err
		}

		declared = et
		if e, err := r.adapter.Get(c, t.index, false, true); err == nil {
			value = e.Value
		}

	default:
		acc, err := r.accessor(t)
		if err != nil {
			return nil, err
		}

		declared = acc.Type()
		if s, err := acc.Get(false, true); err == nil {
			value = s.value
		}
	}

	return dynamic(declared, value), nil
}

func dynamic(declared reflect.Type, v reflect.Value) reflect.Type {
	if declared != nil && declared.Kind() != reflect.Interface {
		return declared
	}

	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	if !v.IsValid() || v.Kind() == reflect.Interface {
		return declared
	}

	return v.Type()
}
