package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a record of a product name, an amount, and when it was placed.
// Orders are created and deleted, never updated in place.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ProductName string          `json:"product_name" gorm:"size:255;not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
}
