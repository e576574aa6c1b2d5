package bean

import (
	"log/slog"
	"reflect"

	"propath/convert"
	"propath/factory"
	"propath/introspect"
	"propath/node"
	"propath/options"
)

// Util resolves property paths using a set of collaborators. A Util holds
// no per-call state and is safe for concurrent use.
type Util struct {
	introspector introspect.Introspector
	converter    node.Converter
	factory      node.Factory
	logger       *slog.Logger
}

type Option func(*Util)

// WithIntrospector sets the source of struct property descriptors.
func WithIntrospector(i introspect.Introspector) Option {
	return func(u *Util) {
		u.introspector = i
	}
}

// WithConverter sets the type coercion used for written values and map keys.
func WithConverter(c node.Converter) Option {
	return func(u *Util) {
		u.converter = c
	}
}

// WithFactory sets the instance factory used by forced access.
func WithFactory(f node.Factory) Option {
	return func(u *Util) {
		u.factory = f
	}
}

// WithLogger sets the logger structural changes are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(u *Util) {
		u.logger = l
	}
}

func New(opts ...Option) *Util {
	u := &Util{}
	for _, opt := range opts {
		opt(u)
	}

	if u.introspector == nil {
		u.introspector = introspect.New()
	}

	if u.converter == nil {
		u.converter = convert.New()
	}

	if u.factory == nil {
		u.factory = factory.New()
	}

	if u.logger == nil {
		u.logger = slog.New(slog.DiscardHandler)
	}

	return u
}

var std = New()

// Default returns the Util used by the package level functions.
func Default() *Util {
	return std
}

func GetValue(root any, path string, mode options.Mode) (any, error) {
	return std.GetValue(root, path, mode)
}

func SetValue(root any, path string, value any, mode options.Mode) error {
	return std.SetValue(root, path, value, mode)
}

func HasValue(root any, path string, mode options.Mode) (bool, error) {
	return std.HasValue(root, path, mode)
}

func TypeOf(root any, path string, mode options.Mode) (reflect.Type, error) {
	return std.TypeOf(root, path, mode)
}

func Populate(target any, data map[string]any, mode options.Mode) error {
	return std.Populate(target, data, mode)
}

func Copy(src, dst any, mode options.Mode) error {
	return std.Copy(src, dst, mode)
}
