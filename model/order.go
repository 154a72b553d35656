package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending   = "PENDING"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// IsKnownOrderStatus reports whether s is one of the five lifecycle statuses.
func IsKnownOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	DTO
	PublicCode          string      `gorm:"unique;size:20" json:"orderCode"`
	SessionID           string      `gorm:"size:40;index" json:"-"`
	CustomerName        string      `gorm:"size:100" json:"customerName"`
	Phone               string      `gorm:"size:30" json:"phone"`
	Email               string      `gorm:"size:100" json:"email"`
	RoomNumber          string      `gorm:"size:20" json:"roomNumber"`
	SpecialInstructions string      `json:"specialInstructions"`
	Subtotal            float64     `json:"subtotal"`
	Tax                 float64     `json:"tax"`
	ServiceCharge       float64     `json:"serviceCharge"`
	TotalAmount         float64     `json:"total"`
	Status              string      `gorm:"size:20;index" json:"status"`
	OrderDate           time.Time   `json:"orderDate"`
	Items               []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is an immutable snapshot of a cart entry taken at submission
// time, decoupled from later catalog edits.
type OrderItem struct {
	DTO
	OrderID    uint    `gorm:"index;not null" json:"-"`
	MenuItemID uint    `gorm:"index" json:"menuItemId"`
	Name       string  `gorm:"size:100" json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// AfterFind fails closed when a row carries a status outside the known set,
// so a corrupted record never reaches callers looking valid.
func (o *Order) AfterFind(tx *gorm.DB) error {
	if !IsKnownOrderStatus(o.Status) {
		return fmt.Errorf("order %s has unrecognized status %q", o.PublicCode, o.Status)
	}
	return nil
}

type CustomerInfoInput struct {
	Name                string `json:"name" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	RoomNumber          string `json:"roomNumber" validate:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
