package introspect

import (
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var errorType = reflect.TypeFor[error]()

// Descriptor lists the properties of one struct type.
type Descriptor struct {
	Type reflect.Type

	props map[string]*Property
	names []string
}

// Property looks name up by its registered name, then with the first
// letter upper-cased, so "name" finds the Go field Name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	if p, ok := d.props[name]; ok {
		return p, true
	}

	if upper := capitalize(name); upper != name {
		p, ok := d.props[upper]
		return p, ok
	}

	return nil, false
}

// Names returns property names: fields in declaration order followed by
// accessor-only properties sorted by name.
func (d *Descriptor) Names() []string {
	return slices.Clone(d.names)
}

func (d *Descriptor) Len() int {
	return len(d.names)
}

func describe(t reflect.Type, tag string) *Descriptor {
	d := &Descriptor{Type: t, props: map[string]*Property{}}

	for _, f := range reflect.VisibleFields(t) {
		name := f.Name

		if value, ok := f.Tag.Lookup(tag); ok {
			value, _, _ = strings.Cut(value, ",")
			if value == "-" {
				continue
			}

			if value != "" {
				name = value
			}
		}

		if _, dup := d.props[name]; dup {
			continue
		}

		field := f
		d.props[name] = &Property{
			Name:      name,
			Type:      f.Type,
			WriteType: f.Type,
			field:     &field,
		}
		d.names = append(d.names, name)
	}

	fieldCount := len(d.names)
	ptr := reflect.PointerTo(t)

	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)

		if name, ok := cutPrefix(m.Name, "Set"); ok && isSetter(m.Type) {
			p := d.property(name)
			p.setter = m.Name
			p.WriteType = m.Type.In(1)

			continue
		}

		if !isGetter(m.Type) {
			continue
		}

		name, rank := m.Name, 1
		if base, ok := cutPrefix(name, "Get"); ok {
			name, rank = base, 0
		} else if base, ok := cutPrefix(name, "Is"); ok {
			name, rank = base, 2
		}

		p := d.property(name)
		if p.getter == "" || p.rank > rank {
			p.getter = m.Name
			p.rank = rank
			p.Type = m.Type.Out(0)
		}
	}

	methodNames := d.names[fieldCount:]
	slices.Sort(methodNames)

	return d
}

// property returns the property registered as name, creating an
// accessor-only property when it does not exist yet. Accessors of an
// unexported field spelled in lower case (name, Name, SetName) join the
// field's property.
func (d *Descriptor) property(name string) *Property {
	if p, ok := d.props[name]; ok {
		return p
	}

	if p, ok := d.props[uncapitalize(name)]; ok && p.field != nil && !p.field.IsExported() {
		d.props[name] = p
		return p
	}

	p := &Property{Name: name}
	d.props[name] = p
	d.names = append(d.names, name)

	return p
}

// cutPrefix strips an accessor prefix that is followed by an upper-case
// letter, so Settle and Issue are not taken for SetTle and IsSue.
func cutPrefix(s, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok || rest == "" {
		return s, false
	}

	if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsUpper(r) {
		return s, false
	}

	return rest, true
}

// isGetter matches func(recv) T and func(recv) (T, error).
func isGetter(t reflect.Type) bool {
	switch {
	case t.NumIn() != 1 || t.IsVariadic():
		return false
	case t.NumOut() == 1:
		return t.Out(0) != errorType
	case t.NumOut() == 2:
		return t.Out(1) == errorType
	}

	return false
}

// isSetter matches func(recv, T) and func(recv, T) error.
func isSetter(t reflect.Type) bool {
	if t.NumIn() != 2 || t.IsVariadic() {
		return false
	}

	return t.NumOut() == 0 || t.NumOut() == 1 && t.Out(0) == errorType
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
