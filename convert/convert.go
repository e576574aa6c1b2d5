package convert

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"propath/options"
	"propath/primitive"
)

// ErrTypeConversion is returned when a value cannot be coerced into the
// requested type.
var ErrTypeConversion = errors.New("type conversion failed")

type casterKey struct {
	src, dst reflect.Type
}

// Manager is a registry-backed Converter. The zero value is not usable,
// construct it with New. It is safe for concurrent use.
type Manager struct {
	categories options.CategoryEnum

	mu      sync.Mutex
	casters sync.Map // casterKey -> Caster
}

// Option configures a Manager.
type Option func(*Manager)

// WithCategories limits the conversions a Manager may apply.
func WithCategories(categories options.CategoryEnum) Option {
	return func(m *Manager) {
		m.categories = categories
	}
}

// WithCaster registers fn at construction time; it panics if fn is not a
// valid caster.
func WithCaster(fn any) Option {
	return func(m *Manager) {
		if err := m.Register(fn); err != nil {
			panic(err)
		}
	}
}

// New returns a Manager with all conversion categories enabled unless
// restricted by opts.
func New(opts ...Option) *Manager {
	m := &Manager{categories: options.CategoryAll}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Categories returns the conversion categories m applies.
func (m *Manager) Categories() options.CategoryEnum {
	return m.categories
}

// Register adds a caster function (see ParseCaster). A later registration
// for the same source and destination types replaces the earlier one.
func (m *Manager) Register(fn any) error {
	caster, err := ParseCaster(fn)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.casters.Store(casterKey{caster.Src, caster.Dst}, caster)

	return nil
}

// Convert returns src coerced into a value of exactly type dst. An invalid
// src or nil interface yields the zero value of dst.
func (m *Manager) Convert(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	res, err := m.convert(src, dst)
	if err != nil {
		switch {
		case errors.Is(err, ErrTypeConversion):
			return reflect.Value{}, err
		case errors.Is(err, primitive.ErrInvalidValue), errors.Is(err, primitive.ErrNotAllowed),
			errors.Is(err, primitive.ErrNotPrimitive):
			// already names the pair
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeConversion, err)
		}

		return reflect.Value{}, fmt.Errorf("%w: %s -> %s: %w", ErrTypeConversion, typeName(src), dst, err)
	}

	return res, nil
}

// To converts v into T using c.
func To[T any](c *Manager, v any) (T, error) {
	var zero T

	res, err := c.Convert(reflect.ValueOf(v), reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	return res.Interface().(T), nil
}

func (m *Manager) convert(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	for src.IsValid() && src.Kind() == reflect.Interface && !src.IsNil() {
		src = src.Elem()
	}

	if !src.IsValid() || isNilInterface(src) {
		return reflect.Zero(dst), nil
	}

	if src.Type().AssignableTo(dst) {
		out := reflect.New(dst).Elem()
		out.Set(src)

		return out, nil
	}

	if c, ok := m.casters.Load(casterKey{src.Type(), dst}); ok {
		return c.(Caster).Call(src)
	}

	if src.Kind() == reflect.Pointer {
		if src.IsNil() {
			return reflect.Zero(dst), nil
		}

		return m.convert(src.Elem(), dst)
	}

	if dst.Kind() == reflect.Pointer {
		elem, err := m.convert(src, dst.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(dst.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil
	}

	if res, ok, err := m.special(src, dst); ok {
		return res, err
	}

	if primitive.Of(src.Type()) != 0 && primitive.Of(dst) != 0 {
		return primitive.Convert(src, dst, m.categories)
	}

	if res, ok, err := m.text(src, dst); ok {
		return res, err
	}

	if res, ok, err := m.collection(src, dst); ok {
		return res, err
	}

	if dst.Kind() == reflect.String && m.categories.Has(options.CategoryText) {
		return reflect.ValueOf(fmt.Sprint(src.Interface())).Convert(dst), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s -> %s", ErrTypeConversion, src.Type(), dst)
}

func isNilInterface(v reflect.Value) bool {
	return v.Kind() == reflect.Interface && v.IsNil()
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return v.Type().String()
}
