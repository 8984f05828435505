// internal/models/offer.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferDiscount is the fraction of the product price an offer is
// listed at. Offer prices are recomputed from it whenever the product
// price changes.
var OfferDiscount = decimal.NewFromFloat(0.8)

// Offer is a discounted re-listing of a product. The whole set is
// replaced on each rotation, never updated incrementally.
type Offer struct {
	BaseModel
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;uniqueIndex;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(16,2);not null"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// DiscountedPrice returns the offer price for a product, exactly 80%
// of its current price.
func DiscountedPrice(price decimal.Decimal) decimal.Decimal {
	return price.Mul(OfferDiscount)
}
