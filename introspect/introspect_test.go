package introspect_test

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/introspect"
)

type Audit struct {
	CreatedBy string
}

type base struct {
	ID int
}

type Customer struct {
	base
	*Audit

	Name    string `bean:"title"`
	Email   string
	Hidden  bool `bean:"-"`
	secret  string
	balance int
	active  bool
}

func (c *Customer) Balance() int { return c.balance }

func (c *Customer) SetBalance(v int) error {
	if v < 0 {
		return errors.New("negative balance")
	}

	c.balance = v

	return nil
}

func (c *Customer) IsActive() bool   { return c.active }
func (c *Customer) GetEmail() string { return strings.ToLower(c.Email) }

func (c *Customer) Display() (string, error) {
	if c.Name == "" {
		return "", errors.New("no name")
	}

	return c.Name + " <" + c.Email + ">", nil
}

func (c *Customer) Settle()       {}
func (c *Customer) Issue() string { return "issue" }

func describe(t *testing.T, v any) *introspect.Descriptor {
	t.Helper()

	d, ok := introspect.New().Describe(reflect.TypeOf(v))
	require.True(t, ok)

	return d
}

func TestDescribeNames(t *testing.T) {
	t.Parallel()

	d := describe(t, Customer{})

	assert.Equal(t, []string{
		"base", "ID", "Audit", "CreatedBy", "title", "Email", "secret", "balance", "active",
		"Display", "Issue",
	}, d.Names())
	assert.Equal(t, d.Len(), len(d.Names()))

	_, ok := d.Property("Hidden")
	assert.False(t, ok)
	_, ok = d.Property("Name")
	assert.False(t, ok, "renamed by tag")
	_, ok = d.Property("Settle")
	assert.False(t, ok)
	_, ok = d.Property("Tle")
	assert.False(t, ok)
	_, ok = d.Property("Sue")
	assert.False(t, ok)

	p, ok := d.Property("email")
	require.True(t, ok)
	assert.Equal(t, "Email", p.Name)

	p, ok = d.Property("Balance")
	require.True(t, ok, "accessors join the unexported field")
	assert.Equal(t, "balance", p.Name)
	assert.True(t, p.Exported())
}

func TestDescribeNonStruct(t *testing.T) {
	t.Parallel()

	c := introspect.New()

	for _, v := range []any{1, "s", []int{}, map[string]int{}, nil} {
		_, ok := c.Describe(reflect.TypeOf(v))
		assert.False(t, ok, "%T", v)
	}

	_, ok := c.Describe(reflect.TypeFor[*Customer]())
	assert.True(t, ok)
}

func TestPropertyGet(t *testing.T) {
	t.Parallel()

	d := describe(t, Customer{})
	c := Customer{base: base{ID: 7}, Name: "Ann", Email: "ANN@X.IO", secret: "s3", balance: 10, active: true}

	get := func(name string, declared bool) (any, error) {
		p, ok := d.Property(name)
		require.True(t, ok, name)

		v, err := p.Get(reflect.ValueOf(c), declared)
		if err != nil || !v.IsValid() {
			return nil, err
		}

		return v.Interface(), nil
	}

	tests := []struct {
		name     string
		declared bool
		want     any
	}{
		{"ID", false, 7},
		{"title", false, "Ann"},
		{"Email", false, "ann@x.io"},
		{"balance", false, 10},
		{"Active", false, true},
		{"active", true, true},
		{"secret", true, "s3"},
		{"display", false, "Ann <ANN@X.IO>"},
		{"CreatedBy", false, nil},
	}

	for _, tt := range tests {
		got, err := get(tt.name, tt.declared)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := get("secret", false)
	assert.ErrorIs(t, err, introspect.ErrNotReadable)

	c.Name = ""
	_, err = get("Display", false)
	assert.ErrorIs(t, err, introspect.ErrAccessor)
}

func TestPropertySet(t *testing.T) {
	t.Parallel()

	d := describe(t, Customer{})
	c := &Customer{}

	set := func(name string, x any, declared bool) error {
		p, ok := d.Property(name)
		require.True(t, ok, name)

		return p.Set(reflect.ValueOf(c), reflect.ValueOf(x), declared)
	}

	require.NoError(t, set("title", "Bob", false))
	require.NoError(t, set("ID", 3, false))
	require.NoError(t, set("balance", 5, false))
	require.NoError(t, set("secret", "x", true))
	require.NoError(t, set("CreatedBy", "root", false))

	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, 5, c.balance)
	assert.Equal(t, "x", c.secret)
	require.NotNil(t, c.Audit, "nil embedded pointer is allocated")
	assert.Equal(t, "root", c.CreatedBy)

	assert.ErrorIs(t, set("balance", -1, false), introspect.ErrAccessor)
	assert.ErrorIs(t, set("secret", "y", false), introspect.ErrNotWritable)
	assert.ErrorIs(t, set("Display", "y", false), introspect.ErrNotWritable)

	p, _ := d.Property("title")
	assert.ErrorIs(t, p.Set(reflect.ValueOf(Customer{}), reflect.ValueOf("x"), false), introspect.ErrNotAddressable)
}

func TestPropertyTypes(t *testing.T) {
	t.Parallel()

	d := describe(t, Customer{})

	p, _ := d.Property("Display")
	assert.Equal(t, reflect.TypeFor[string](), p.Type)
	assert.Nil(t, p.WriteType)
	assert.True(t, p.Readable(false))
	assert.False(t, p.Writable(true))

	p, _ = d.Property("Audit")
	assert.Equal(t, reflect.TypeFor[*Audit](), p.WriteType)

	f, ok := p.Field()
	require.True(t, ok)
	assert.True(t, f.Anonymous)

	p, _ = d.Property("Display")
	_, ok = p.Field()
	assert.False(t, ok)

	p, _ = d.Property("Active")
	assert.Equal(t, "active", p.Name, "IsActive joins the unexported field")
}

func TestWithTagName(t *testing.T) {
	t.Parallel()

	type row struct {
		Name string `db:"full_name"`
	}

	d, ok := introspect.New(introspect.WithTagName("db")).Describe(reflect.TypeFor[row]())
	require.True(t, ok)
	assert.Equal(t, []string{"full_name"}, d.Names())
}

// TestConcurrentDescribe verifies that concurrent Describe calls agree on a
// single descriptor per type.
func TestConcurrentDescribe(t *testing.T) {
	c := introspect.New()
	types := []reflect.Type{
		reflect.TypeFor[Customer](),
		reflect.TypeFor[Audit](),
		reflect.TypeFor[*Customer](),
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	seen := make([][]*introspect.Descriptor, workers)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()

			for _, typ := range types {
				d, _ := c.Describe(typ)
				seen[w] = append(seen[w], d)
			}
		}(w)
	}

	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range types {
			assert.Same(t, seen[0][i], seen[w][i])
		}
	}

	assert.Equal(t, 2, c.Count())
	c.Reset()
	assert.Equal(t, 0, c.Count())
}

func ExampleDescriptor_Names() {
	type point struct {
		X, Y int
		tag  string
	}

	d, _ := introspect.New().Describe(reflect.TypeFor[point]())
	fmt.Println(d.Names())
	// Output: [X Y tag]
}
