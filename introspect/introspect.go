package introspect

import (
	"reflect"
	"sync"
)

// DefaultTagName is the struct tag key used to rename or hide fields.
const DefaultTagName = "bean"

// Introspector provides property descriptors for struct types.
type Introspector interface {
	Describe(t reflect.Type) (*Descriptor, bool)
}

// Cache is the default Introspector: descriptors are built once per type
// and shared afterwards. It is safe for concurrent use.
type Cache struct {
	tag string

	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to *Descriptor.
	m sync.Map
	// count tracks the number of cached descriptors.
	count int
}

// Option configures a Cache.
type Option func(*Cache)

// WithTagName changes the struct tag key consulted for property names.
func WithTagName(tag string) Option {
	return func(c *Cache) {
		c.tag = tag
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{tag: DefaultTagName}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Describe returns the descriptor of t, or of the struct t points to. It
// reports false for anything that is not a struct.
func (c *Cache) Describe(t reflect.Type) (*Descriptor, bool) {
	if t == nil {
		return nil, false
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, false
	}

	if d, ok := c.m.Load(t); ok {
		return d.(*Descriptor), true
	}

	d := describe(t, c.tag)

	c.mu.Lock()
	defer c.mu.Unlock()

	// another goroutine may have stored it meanwhile
	if old, ok := c.m.Load(t); ok {
		return old.(*Descriptor), true
	}

	c.m.Store(t, d)
	c.count++

	return d, true
}

// Count returns the number of cached descriptors.
func (c *Cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}

// Reset drops all cached descriptors.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m.Clear()
	c.count = 0
}
