// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is created once at checkout and immutable afterwards. The
// total is the cart total at checkout time and is never recomputed,
// even if product prices change later.
type Order struct {
	BaseModel
	CustomerID uuid.UUID       `json:"customer_id" gorm:"type:uuid;not null;index"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(16,2);not null"`
	FinishedOn time.Time       `json:"finished_on" gorm:"not null;index"`

	// Relationships
	Customer User           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Products []OrderProduct `json:"products,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderProduct is one purchased unit. A cart entry with quantity N
// expands into N rows, each a snapshot of the product at checkout.
type OrderProduct struct {
	BaseModel
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	ImageURL  string          `json:"image_url" gorm:"size:512"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(16,2);not null"`
}
