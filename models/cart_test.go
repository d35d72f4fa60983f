package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartTotalPrice(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Quantity: 3, Product: Product{Price: decimal.RequireFromString("19.99")}},
			{Quantity: 1, Product: Product{Price: decimal.RequireFromString("0.01")}},
			{Quantity: 2, Product: Product{Price: decimal.RequireFromString("2.50")}},
		},
	}

	// 3*19.99 + 0.01 + 2*2.50 = 64.98, exactly
	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("64.98")),
		"got %s", cart.TotalPrice())
	assert.Equal(t, 6, cart.TotalItems())
}

func TestCartTotalPriceEmpty(t *testing.T) {
	var cart Cart
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestMapOrderStatus(t *testing.T) {
	status, err := MapOrderStatus("Shipped")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = MapOrderStatus("teleported")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
