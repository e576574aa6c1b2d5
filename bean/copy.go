package bean

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"propath/internal/diagnostic"
	"propath/node"
	"propath/options"
	"propath/segment"
)

// Copy copies every readable property of src into the same-named writable
// property of dst, converting values on the way. src and dst may be
// structs or maps with string keys; properties dst does not have are
// skipped. Failing properties do not stop the others.
func (u *Util) Copy(src, dst any, mode options.Mode) error {
	declared := mode.Declared()

	names, err := u.readable(src, declared)
	if err != nil {
		return u.copyFailed(mode, err)
	}

	var diags diagnostic.Diagnostics

	read := mode.Without(options.ModeForced | options.ModeSilent)
	write := mode.Without(options.ModeSilent)

	for _, name := range names {
		if !u.writable(dst, name, declared) {
			diags.AddInfo(CodeCopySkipped, "no such property on destination", name)
			continue
		}

		path, ok := keyPath(name)
		if !ok {
			diags.AddError(CodeCopyFailed, "key cannot be addressed by a path", name)
			continue
		}

		v, err := u.GetValue(src, path, read)
		if err == nil {
			err = u.SetValue(dst, path, v, write)
		}

		if err != nil {
			diags.AddCause(CodeCopyFailed, name, err)
		}
	}

	if mode.Silent() {
		return nil
	}

	return diags.Error()
}

func (u *Util) copyFailed(mode options.Mode, err error) error {
	if mode.Silent() {
		return nil
	}

	return &PathError{Op: "copy", Err: err}
}

// readable lists the property names of src.
func (u *Util) readable(src any, declared bool) ([]string, error) {
	v := node.Indirect(reflect.ValueOf(src))

	switch node.Dispatch(v) {
	case node.ShapeStruct:
		desc, ok := u.introspector.Describe(v.Type())
		if !ok {
			break
		}

		return slices.DeleteFunc(desc.Names(), func(n string) bool {
			p, _ := desc.Property(n)
			return !p.Readable(declared)
		}), nil

	case node.ShapeMap:
		if v.Type().Key().Kind() != reflect.String {
			break
		}

		names := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			names = append(names, k.String())
		}

		slices.Sort(names)

		return names, nil
	}

	if node.IsNull(v) {
		return nil, ErrNilRoot
	}

	return nil, fmt.Errorf("%w: cannot copy from %s", ErrUnsupportedContainer, v.Type())
}

// writable reports whether dst has a property name that can be written.
func (u *Util) writable(dst any, name string, declared bool) bool {
	v := node.Indirect(reflect.ValueOf(dst))

	switch node.Dispatch(v) {
	case node.ShapeStruct:
		desc, ok := u.introspector.Describe(v.Type())
		if !ok {
			return false
		}

		p, ok := desc.Property(name)

		return ok && p.Writable(declared)

	case node.ShapeMap:
		return true
	}

	return false
}

// keyPath addresses a map key that would otherwise be split or read as
// the object itself. It reports false for keys no path can address, such
// as "a]b".
func keyPath(name string) (string, bool) {
	if !strings.ContainsAny(name, ".[]") && !isSelf(name) {
		return name, true
	}

	path := "[" + name + "]"

	p := segment.Split(path)
	if len(p) != 1 || !p[0].HasIndex || p[0].Name != "" || p[0].Index != name {
		return "", false
	}

	return path, true
}
