package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the payment gateway side of an order.
type PaymentStatus string

const (
	PaymentStatusPending             PaymentStatus = "PENDING"
	PaymentStatusAuthorized          PaymentStatus = "AUTHORIZED"
	PaymentStatusFailed              PaymentStatus = "FAILED"
	PaymentStatusExpired             PaymentStatus = "EXPIRED"
	PaymentStatusCancelledByCustomer PaymentStatus = "CANCELLED_BY_CUSTOMER"
	PaymentStatusCancelledByGuest    PaymentStatus = "CANCELLED_BY_GUEST"
)

// Order is a purchase snapshot. Total and per-line prices are captured at
// creation time so later catalog edits never change historic orders.
//
// UserID is nil for guest checkouts; CustomerEmail is always set and is the
// identity a guest proves ownership of through the OTP flow.
type Order struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	CustomerEmail   string
	Total           int
	Status          OrderStatus
	PaymentStatus   *PaymentStatus
	WebpayToken     *string // Gateway transaction token, unique when present.
	ShippingAddress map[string]any
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	Product       *Product
	Qty           int
	PriceSnapshot int // Unit price at purchase time.
}
