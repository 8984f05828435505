// internal/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddMergesSameProduct(t *testing.T) {
	productID := uuid.New()
	c := New()

	c.Add(Item{ProductID: productID, Name: "Keyboard", UnitPrice: decimal.NewFromFloat(10.50), Quantity: 1})
	c.Add(Item{ProductID: productID, Name: "Keyboard", UnitPrice: decimal.NewFromFloat(10.50), Quantity: 2})

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddKeepsDistinctProducts(t *testing.T) {
	c := New()

	c.Add(Item{ProductID: uuid.New(), Name: "Keyboard", UnitPrice: decimal.NewFromFloat(10.50), Quantity: 1})
	c.Add(Item{ProductID: uuid.New(), Name: "Mouse", UnitPrice: decimal.NewFromFloat(4.50), Quantity: 1})

	assert.Equal(t, 2, c.Len())
}

func TestTotalIsExact(t *testing.T) {
	c := New()

	c.Add(Item{ProductID: uuid.New(), UnitPrice: decimal.NewFromFloat(10.50), Quantity: 2})
	c.Add(Item{ProductID: uuid.New(), UnitPrice: decimal.NewFromFloat(4.50), Quantity: 1})

	assert.True(t, c.Total().Equal(decimal.NewFromFloat(25.50)),
		"expected 25.50, got %s", c.Total())
}

func TestRemove(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	c := New()

	c.Add(Item{ProductID: keep, UnitPrice: decimal.NewFromInt(5), Quantity: 1})
	c.Add(Item{ProductID: drop, UnitPrice: decimal.NewFromInt(7), Quantity: 3})

	c.Remove(drop)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, keep, items[0].ProductID)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(5)))
}

func TestRemoveMissingProductIsNoop(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: uuid.New(), UnitPrice: decimal.NewFromInt(5), Quantity: 1})

	c.Remove(uuid.New())

	assert.Equal(t, 1, c.Len())
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	c := New()
	assert.True(t, c.Total().IsZero())
	assert.Empty(t, c.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: uuid.New(), Name: "Keyboard", UnitPrice: decimal.NewFromInt(5), Quantity: 1})

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestSubtotal(t *testing.T) {
	item := Item{UnitPrice: decimal.NewFromFloat(2.95), Quantity: 3}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(8.85)))
}
