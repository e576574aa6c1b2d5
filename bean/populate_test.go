package bean_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/bean"
	"propath/options"
	"propath/store"
)

func TestPopulate(t *testing.T) {
	t.Parallel()

	order := &store.Order{}
	data := map[string]any{
		"Status": "PAID",
		"Customer": map[string]any{
			"Email":   "bob@example.com",
			"Address": map[string]any{"zip": "0150", "City": "Oslo"},
			"Tags":    []any{"new", "b2b"},
		},
		"Items": []any{
			map[string]any{"Quantity": "3", "Product": map[string]any{"SKU": "B-2", "Price": "5.50"}},
			map[string]any{"Quantity": 1},
		},
		"Discounts": map[string]any{"10": "0.05"},
		"Meta":      map[string]any{"source": "import"},
	}

	require.NoError(t, bean.Populate(order, data, options.ModeNone))

	assert.Equal(t, store.StatusPaid, order.Status)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "bob@example.com", order.Customer.Email)
	assert.Equal(t, &store.Address{City: "Oslo", PostalCode: "0150"}, order.Customer.Address)
	assert.Equal(t, []string{"new", "b2b"}, order.Customer.Tags)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "B-2", order.Items[0].Product.SKU)
	assert.True(t, decimal.RequireFromString("5.5").Equal(order.Items[0].Product.Price))
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Nil(t, order.Items[1].Product)

	require.Contains(t, order.Discounts, 10)
	assert.Equal(t, "0.05", order.Discounts[10].String())

	if diff := cmp.Diff(map[string]any{"source": "import"}, order.Meta); diff != "" {
		t.Errorf("Meta mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulateIntoMap(t *testing.T) {
	t.Parallel()

	doc := map[string]any{}

	require.NoError(t, bean.Populate(doc, map[string]any{
		"name": "lamp",
		"size": map[string]any{"w": 10},
	}, options.ModeNone))

	want := map[string]any{"name": "lamp", "size": map[string]any{"w": 10}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulateErrors(t *testing.T) {
	t.Parallel()

	order := &store.Order{}
	data := map[string]any{
		"Status":   "PAID",
		"Customer": map[string]any{"Emal": "x@example.com"},
		"Items":    []any{map[string]any{"Quantity": "many"}},
	}

	err := bean.Populate(order, data, options.ModeNone)
	require.Error(t, err)
	require.ErrorIs(t, err, bean.ErrPropertyNotFound)
	require.ErrorIs(t, err, bean.ErrTypeConversion)

	assert.Contains(t, err.Error(), "Customer.Emal: [populate_failed]")
	assert.Contains(t, err.Error(), "did you mean Email?")
	assert.Contains(t, err.Error(), "Items[0].Quantity: [populate_failed]")

	// entries after a failing one are still written
	assert.Equal(t, store.StatusPaid, order.Status)
}

func TestPopulateSilent(t *testing.T) {
	t.Parallel()

	order := &store.Order{}

	err := bean.Populate(order, map[string]any{"Nope": 1, "Status": "SHIPPED"}, silent)
	require.NoError(t, err)
	assert.Equal(t, store.StatusShipped, order.Status)
}
