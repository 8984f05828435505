// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"productshop/internal/cart"
	"productshop/internal/models"
)

func TestBuildOrderExpandsQuantities(t *testing.T) {
	customer := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	keyboard := uuid.New()
	mouse := uuid.New()

	items := []cart.Item{
		{ProductID: keyboard, Name: "Keyboard", UnitPrice: decimal.NewFromFloat(10.50), Quantity: 2},
		{ProductID: mouse, Name: "Mouse", UnitPrice: decimal.NewFromFloat(4.50), Quantity: 1},
	}

	order := BuildOrder(items, customer)

	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Len(t, order.Products, 3)
	assert.Equal(t, keyboard, order.Products[0].ProductID)
	assert.Equal(t, keyboard, order.Products[1].ProductID)
	assert.Equal(t, mouse, order.Products[2].ProductID)
}

func TestBuildOrderTotalMatchesCart(t *testing.T) {
	customer := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	items := []cart.Item{
		{ProductID: uuid.New(), UnitPrice: decimal.NewFromFloat(10.50), Quantity: 2},
		{ProductID: uuid.New(), UnitPrice: decimal.NewFromFloat(4.50), Quantity: 1},
	}

	order := BuildOrder(items, customer)

	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(25.50)),
		"expected 25.50, got %s", order.TotalPrice)
}

func TestBuildOrderSnapshotsLinePrices(t *testing.T) {
	customer := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	unitPrice := decimal.NewFromFloat(7.99)

	items := []cart.Item{
		{ProductID: uuid.New(), Name: "Headset", ImageURL: "headset.png", UnitPrice: unitPrice, Quantity: 2},
	}

	order := BuildOrder(items, customer)

	for _, line := range order.Products {
		assert.Equal(t, "Headset", line.Name)
		assert.Equal(t, "headset.png", line.ImageURL)
		assert.True(t, line.Price.Equal(unitPrice))
	}
}

func TestBuildOrderEmptyCart(t *testing.T) {
	customer := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	order := BuildOrder(nil, customer)

	assert.Empty(t, order.Products)
	assert.True(t, order.TotalPrice.IsZero())
}
