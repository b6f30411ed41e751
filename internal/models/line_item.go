package models

// LineItem is one service instance attached to an order. Measurements are
// kept as the entered strings: validation and arithmetic happen in the
// pricing package, and the stored value keeps full entered precision.
// Per-unit items fill Quantity; per-area items fill Length and Width.
type LineItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	OrderID   string `json:"-" gorm:"index;not null"`
	ServiceID string `json:"service_id" gorm:"not null"`
	Length    string `json:"length,omitempty"`
	Width     string `json:"width,omitempty"`
	Quantity  string `json:"quantity,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}
