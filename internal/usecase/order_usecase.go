package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Qty       int
}

// CreateOrderInput defines the data required to place an order.
// UserID is nil for guest checkouts; Email is always required.
type CreateOrderInput struct {
	UserID          *uuid.UUID
	Email           string
	Items           []OrderItemInput
	ShippingAddress map[string]any
}

// --- Output DTOs ---

// OrderListOutput is one page of orders.
type OrderListOutput struct {
	Orders []*entity.Order
	Total  int64
	Page   int
	Limit  int
}

// SweepResult summarizes one stale order sweep run.
type SweepResult struct {
	Scanned   int
	Cancelled int
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder atomically reserves stock for every line and persists the
	// order as PENDING. Any unavailable line aborts the whole order.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order for its owner, or for staff.
	GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// ListMyOrders retrieves the caller's orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves a page of all orders for staff.
	ListOrders(ctx context.Context, page, limit int) (*OrderListOutput, error)

	// CancelOrder cancels a PENDING order and restocks its lines. The
	// transition happens at most once no matter how often it is called.
	CancelOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus lets staff move an order between lifecycle states.
	UpdateOrderStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// SweepStaleOrders cancels and restocks PENDING orders whose payment
	// never progressed within the reserve window.
	SweepStaleOrders(ctx context.Context) (*SweepResult, error)
}
