package bean

import (
	"fmt"
	"reflect"

	"propath/node"
	"propath/options"
)

// GetValue reads the value at path. An absent value is returned as nil
// with a nil error. With options.ModeForced, missing intermediate
// structure is created and a nil final property is materialized.
func (u *Util) GetValue(root any, path string, mode options.Mode) (value any, err error) {
	r := u.begin(OpGet, path, mode)
	defer r.rescue(&err)

	v, err := r.run(rootSlot(root), r.get)
	if err != nil {
		return nil, r.finish(err)
	}

	return valueOf(v), nil
}

// SetValue converts value to the declared type at path and writes it.
// The root must be a non-nil pointer, map, slice or node.Sequence.
func (u *Util) SetValue(root any, path string, value any, mode options.Mode) (err error) {
	r := u.begin(OpSet, path, mode)
	defer r.rescue(&err)

	rs := rootSlot(root)
	if err := writableRoot(rs.value); err != nil {
		return r.finish(r.fail(err))
	}

	x := reflect.ValueOf(value)

	_, err = r.run(rs, func(t target) (reflect.Value, error) {
		return reflect.Value{}, r.set(t, x)
	})

	return r.finish(err)
}

// HasValue reports whether path addresses an existing property, map key
// or in-bounds element. It never modifies root. Missing structure on the
// way yields false; only malformed paths are reported as errors.
func (u *Util) HasValue(root any, path string, mode options.Mode) (ok bool, err error) {
	r := u.begin(OpHas, path, mode)
	defer r.rescue(&err)

	t, err := r.resolve(rootSlot(root))
	if err == nil {
		ok, err = r.has(t)
	}

	if err != nil {
		if absent(err) {
			return false, nil
		}

		return false, r.finish(r.fail(err))
	}

	return ok, nil
}

// TypeOf returns the declared type at path, refined to the dynamic type
// of the value for interface declarations. It never modifies root.
func (u *Util) TypeOf(root any, path string, mode options.Mode) (typ reflect.Type, err error) {
	r := u.begin(OpType, path, mode)
	defer r.rescue(&err)

	t, err := r.resolve(rootSlot(root))
	if err == nil {
		typ, err = r.typeOf(t)
	}

	if err != nil {
		return nil, r.finish(r.fail(err))
	}

	return typ, nil
}

// run resolves the path, applies op to its end and commits write-backs.
func (r *resolution) run(root slot, op func(target) (reflect.Value, error)) (reflect.Value, error) {
	if !root.value.IsValid() {
		return reflect.Value{}, r.fail(ErrNilRoot)
	}

	t, err := r.resolve(root)
	if err != nil {
		return reflect.Value{}, r.fail(err)
	}

	v, err := op(t)
	if err != nil {
		return reflect.Value{}, r.fail(err)
	}

	if r.mutating {
		if err := r.commit(); err != nil {
			return reflect.Value{}, r.fail(err)
		}
	}

	return v, nil
}

// finish drops err in silent mode.
func (r *resolution) finish(err error) error {
	if err != nil && r.mode.Silent() {
		r.log.Debug("suppressed", "error", err)
		return nil
	}

	return err
}

// rescue turns a reflection panic into an error of the operation.
func (r *resolution) rescue(err *error) {
	p := recover()
	if p == nil {
		return
	}

	*err = r.finish(r.fail(fmt.Errorf("%w: %v", ErrUnsupportedContainer, p)))
}

// writableRoot accepts the roots SetValue can modify in place.
func writableRoot(v reflect.Value) error {
	if !v.IsValid() || v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilRoot
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return nil
	}

	if node.Dispatch(v) == node.ShapeSequence {
		return nil
	}

	return fmt.Errorf("%w: root of type %s is passed by value", ErrNotWritable, v.Type())
}

func valueOf(v reflect.Value) any {
	if node.IsNull(v) {
		return nil
	}

	return v.Interface()
}
