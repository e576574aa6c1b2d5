package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"user.name", "username"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeAccessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"GetName", "name"},
		{"IsActive", "active"},
		{"SetBalance", "balance"},
		{"UserID", "user"},
		{"GetUserID", "user"},
		{"ID", "id"},
		{"Is", "is"},
		{"history", "history"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeAccessor(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Equal(t, []string{"user", "first", "name"}, TokenizeIdent("user_first-name"))
	assert.Nil(t, TokenizeIdent(""))
}
