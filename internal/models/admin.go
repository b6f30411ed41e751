package models

import (
	"time"
)

// Admin maps a stable per-device identifier (extracted from the push
// token) to a staff display name. Created once per device the first time
// a cost is entered from it.
type Admin struct {
	DeviceID  string    `json:"device_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	FullToken string    `json:"full_token"`
	CreatedAt time.Time `json:"created_at"`
}
