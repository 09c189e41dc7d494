package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	BaseModel
	Reference  uuid.UUID       `gorm:"type:uuid;uniqueIndex" json:"reference"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id" validate:"required"`
	Customer   *Customer       `json:"customer,omitempty" validate:"-"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
	Items      []OrderLineItem `json:"items" validate:"required,min=1,dive"`
	Total      Amount          `gorm:"type:numeric;not null;default:0" json:"total"`
	Notes      string          `gorm:"type:text" json:"notes"`
}

// BeforeCreate assigns the public order reference
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.Reference == uuid.Nil {
		o.Reference = uuid.New()
	}
	return
}

// OrderLineItem is a snapshot of the product at the time it was selected.
// Code, Name and Price are copies, not a live reference, so later product
// edits never rewrite historical orders.
type OrderLineItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   uint   `gorm:"not null;index" json:"order_id"`
	ProductID uint   `gorm:"not null" json:"product_id" validate:"required"`
	Code      string `gorm:"type:varchar(50)" json:"code"`
	Name      string `gorm:"type:varchar(255)" json:"name"`
	Quantity  int    `gorm:"not null" json:"quantity" validate:"min=1"`
	Price     Amount `gorm:"type:numeric;not null;default:0" json:"price" validate:"gte=0"`
}
