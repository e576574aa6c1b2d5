// Package store is a small order-management model used to exercise
// property paths: tagged fields, accessor methods, pointers, slices,
// fixed arrays, maps keyed by strings and integers, and a custom sequence.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrZeroTime = errors.New("time must not be zero")

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Address represents a physical or billing/shipping address.
type Address struct {
	Street     string
	City       string
	PostalCode string `bean:"zip"`
	Country    string
}

// Customer represents the user placing orders.
type Customer struct {
	ID       uuid.UUID
	Email    string
	FullName string `bean:"name"`
	Address  *Address
	// Addresses are kept by value, keyed by label ("home", "work").
	Addresses map[string]Address
	Tags      []string

	passwordHash string
	active       bool
}

func (c *Customer) IsActive() bool { return c.active }

func (c *Customer) SetActive(active bool) { c.active = active }

// Product represents a sellable item in the store.
type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
	Stock int
	// Dimensions are width, height and depth in centimeters.
	Dimensions [3]float64
}

// OrderItem is a line item within an order.
type OrderItem struct {
	Product   *Product
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total is UnitPrice times Quantity.
func (i *OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer's purchase.
type Order struct {
	ID       uuid.UUID
	Status   OrderStatus
	Customer *Customer
	Items    []OrderItem
	Notes    *[]string
	// Discounts maps a minimal quantity to the discount rate applied from it.
	Discounts map[int]decimal.Decimal
	Meta      map[string]any
	History   *History

	placedAt time.Time
}

func (o *Order) PlacedAt() time.Time { return o.placedAt }

func (o *Order) SetPlacedAt(t time.Time) error {
	if t.IsZero() {
		return ErrZeroTime
	}

	o.placedAt = t

	return nil
}
