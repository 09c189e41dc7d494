package service

import (
	"errors"

	"go-business-ws/internal/ws"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateCode     = errors.New("product code already exists")
	ErrDuplicateName     = errors.New("warehouse name already exists")
	ErrDuplicateEmail    = errors.New("customer email already exists")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOrderClosed       = errors.New("order is completed or cancelled and cannot be edited")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrUnknownProduct    = errors.New("order references an unknown product")
	ErrUnknownCustomer   = errors.New("order references an unknown customer")
)

// Actor is the authenticated user performing an operation
type Actor = ws.Actor

// duplicate maps a unique index violation that raced past the lookup check
func duplicate(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// notFound maps a missing-row error onto a domain sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
