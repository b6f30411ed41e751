package models

import (
	"time"
)

// Cost is an ad-hoc business expense. The ledger is append-only: there is
// no update or delete path anywhere in the application.
type Cost struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     string    `json:"price" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"` // dd/mm/yyyy, set at creation
	User      string    `json:"user" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
