package models

import (
	"time"
)

// Collection names mirror the persisted paths: an order lives in exactly
// one of the three at any time.
const (
	CollectionOrders    = "orders"
	CollectionDelivered = "delivered"
	CollectionDeleted   = "deleted"
)

type Order struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Collection string      `json:"-" gorm:"index;not null"`
	Name       string      `json:"name" gorm:"not null"`
	Phone      string      `json:"phone" gorm:"not null"`
	Location   string      `json:"location" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"not null"`
	OrderDate  time.Time   `json:"order_date" gorm:"not null"`
	Services   []LineItem  `json:"services" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderWaiting   OrderStatus = "waiting"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderDeleted   OrderStatus = "deleted"
)

// Next returns the status an advance moves to. ok is false on a terminal
// or unknown status.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderNew:
		return OrderWaiting, true
	case OrderWaiting:
		return OrderReady, true
	case OrderReady:
		return OrderDelivered, true
	default:
		return s, false
	}
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderDeleted
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderNew, OrderWaiting, OrderReady, OrderDelivered, OrderDeleted:
		return true
	}
	return false
}
