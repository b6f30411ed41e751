package models

import (
	"time"
)

type Service struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Price       string      `json:"price" gorm:"not null"` // decimal string, at most 2 fraction digits
	PricingMode PricingMode `json:"pricing_mode" gorm:"not null"`
	ImageURL    string      `json:"image_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PricingMode selects how a line item's total is computed: price times
// quantity, or price times length times width.
type PricingMode string

const (
	PricingPerUnit PricingMode = "per_unit"
	PricingPerArea PricingMode = "per_square_meter"
)

func (m PricingMode) Valid() bool {
	return m == PricingPerUnit || m == PricingPerArea
}
