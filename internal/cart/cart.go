// internal/cart/cart.go
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one cart line: a product snapshot with the unit price
// captured when the product was added.
type Item struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is UnitPrice times Quantity in exact decimal arithmetic.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds one session's pending purchase. It lives only for the
// duration of the session and is discarded on checkout or expiry. A
// Cart is not safe for concurrent use; the Store serializes access.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges by product identity: an existing line for the same
// product has its quantity incremented, otherwise the item is
// appended. No upper bound on quantity is enforced.
func (c *Cart) Add(item Item) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove drops every line matching the product, at most one given the
// merge invariant.
func (c *Cart) Remove(productID uuid.UUID) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums UnitPrice times Quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}
