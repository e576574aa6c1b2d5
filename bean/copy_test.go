package bean_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/bean"
	"propath/options"
	"propath/store"
)

func newCustomer() *store.Customer {
	c := &store.Customer{
		ID:       uuid.MustParse("0b5c8f7e-3a2d-4f1e-8c9b-7d6e5f4a3b2c"),
		Email:    "ann@example.com",
		FullName: "Ann",
		Address:  &store.Address{City: "Oslo"},
		Tags:     []string{"vip"},
	}
	c.SetActive(true)

	return c
}

func TestCopyStructToStruct(t *testing.T) {
	t.Parallel()

	src := newCustomer()
	require.NoError(t, bean.SetValue(src, "passwordHash", "s3cret", declared))

	dst := &store.Customer{}
	require.NoError(t, bean.Copy(src, dst, options.ModeNone))

	assert.Equal(t, src.ID, dst.ID)
	assert.Equal(t, "ann@example.com", dst.Email)
	assert.Equal(t, "Ann", dst.FullName)
	assert.Same(t, src.Address, dst.Address)
	assert.Equal(t, []string{"vip"}, dst.Tags)
	assert.True(t, dst.IsActive())

	hash, err := bean.GetValue(dst, "passwordHash", declared)
	require.NoError(t, err)
	assert.Equal(t, "", hash)

	require.NoError(t, bean.Copy(src, dst, declared))

	hash, err = bean.GetValue(dst, "passwordHash", declared)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", hash)
}

func TestCopyStructToMap(t *testing.T) {
	t.Parallel()

	src := newCustomer()
	dst := map[string]any{}

	require.NoError(t, bean.Copy(src, dst, options.ModeNone))

	keys := make([]string, 0, len(dst))
	for k := range dst {
		keys = append(keys, k)
	}

	assert.ElementsMatch(t, []string{"ID", "Email", "name", "Address", "Addresses", "Tags", "active"}, keys)
	assert.Equal(t, src.ID, dst["ID"])
	assert.Equal(t, "Ann", dst["name"])
	assert.Equal(t, true, dst["active"])
	assert.Nil(t, dst["Addresses"])
}

func TestCopyMapToStruct(t *testing.T) {
	t.Parallel()

	src := map[string]any{
		"ID":     "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"Email":  "bob@example.com",
		"name":   "Bob",
		"active": "yes",
		"Nope":   1,
	}
	dst := &store.Customer{}

	require.NoError(t, bean.Copy(src, dst, options.ModeNone))

	assert.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), dst.ID)
	assert.Equal(t, "bob@example.com", dst.Email)
	assert.Equal(t, "Bob", dst.FullName)
	assert.True(t, dst.IsActive())
}

func TestCopyErrors(t *testing.T) {
	t.Parallel()

	src := map[string]any{"ID": "not-a-uuid", "Email": "bob@example.com"}
	dst := &store.Customer{}

	err := bean.Copy(src, dst, options.ModeNone)
	require.ErrorIs(t, err, bean.ErrTypeConversion)
	assert.Contains(t, err.Error(), "ID: [copy_failed]")
	assert.Equal(t, "bob@example.com", dst.Email)

	require.NoError(t, bean.Copy(src, dst, silent))

	err = bean.Copy(nil, dst, options.ModeNone)
	require.ErrorIs(t, err, bean.ErrNilRoot)

	err = bean.Copy(42, dst, options.ModeNone)
	require.ErrorIs(t, err, bean.ErrUnsupportedContainer)

	var pe *bean.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "copy", pe.Op)
}

func TestCopyAwkwardKeys(t *testing.T) {
	t.Parallel()

	src := map[string]any{"a.b": 1, "k[0]": 2, "": 3, "*this": 4, "a]b": 5, "plain": 6}
	dst := map[string]any{}

	err := bean.Copy(src, dst, options.ModeNone)
	require.Error(t, err)
	assert.Equal(t, "a]b: [copy_failed] key cannot be addressed by a path", err.Error())

	assert.Equal(t, map[string]any{"a.b": 1, "k[0]": 2, "": 3, "*this": 4, "plain": 6}, dst)
}
