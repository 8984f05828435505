// internal/models/catalog.go
package models

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"many2many:products_categories"`
}

type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(16,2);not null"`
	ImageURL    string          `json:"image_url" gorm:"size:512"`

	// Relationships
	Categories []Category `json:"categories,omitempty" gorm:"many2many:products_categories"`
}
