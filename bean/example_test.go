package bean_test

import (
	"fmt"

	"propath/bean"
	"propath/options"
	"propath/store"
)

func ExampleGetValue() {
	order := &store.Order{
		Customer: &store.Customer{Email: "ann@example.com", Tags: []string{"vip"}},
	}

	email, _ := bean.GetValue(order, "Customer.Email", options.ModeNone)
	tag, _ := bean.GetValue(order, "Customer.Tags[0]", options.ModeNone)
	fmt.Println(email, tag)

	_, err := bean.GetValue(order, "Customer.Emal", options.ModeNone)
	fmt.Println(err)
	// Output:
	// ann@example.com vip
	// get "Customer.Emal" at "Emal": property not found: "Emal" (did you mean Email?)
}

func ExampleSetValue() {
	order := &store.Order{}

	_ = bean.SetValue(order, "Customer.Address.City", "Oslo", options.ModeForced)
	_ = bean.SetValue(order, "Items[2].Quantity", "3", options.ModeForced)

	fmt.Println(order.Customer.Address.City, len(order.Items), order.Items[2].Quantity)
	// Output: Oslo 3 3
}

func ExampleHasValue() {
	order := &store.Order{Meta: map[string]any{"channel": "web"}}

	for _, path := range []string{"Meta.channel", "Meta.gift", "Customer.Email"} {
		ok, _ := bean.HasValue(order, path, options.ModeNone)
		fmt.Println(path, ok)
	}
	// Output:
	// Meta.channel true
	// Meta.gift false
	// Customer.Email false
}

func ExampleTypeOf() {
	order := &store.Order{}

	for _, path := range []string{"Discounts", "Notes", "Customer"} {
		t, _ := bean.TypeOf(order, path, options.ModeNone)
		fmt.Println(t)
	}
	// Output:
	// map[int]decimal.Decimal
	// *[]string
	// *store.Customer
}

func ExamplePopulate() {
	order := &store.Order{}

	err := bean.Populate(order, map[string]any{
		"Status":   "PAID",
		"Customer": map[string]any{"name": "Ann"},
		"Items":    []any{map[string]any{"Quantity": 2}},
	}, options.ModeNone)

	fmt.Println(err, order.Status, order.Customer.FullName, order.Items[0].Quantity)
	// Output: <nil> PAID Ann 2
}
