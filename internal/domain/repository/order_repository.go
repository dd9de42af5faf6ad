package repository

import (
	"context"
	"time"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByWebpayToken retrieves the order holding the given gateway token.
	FindByWebpayToken(ctx context.Context, token string) (*entity.Order, error)

	// ListByUser retrieves a user's orders with items and products, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves a page of all orders plus the total count, newest first.
	List(ctx context.Context, page, limit int) ([]*entity.Order, int64, error)

	// ListStalePending retrieves up to limit PENDING orders created before
	// cutoff whose payment status is NULL or PENDING, oldest first.
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Order, error)

	// UpdateStatus unconditionally sets the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// MarkCancelled conditionally flips the order to CANCELLED unless it is
	// already CANCELLED or PAID. Returns true when this call performed the
	// transition, false when the guard matched no row.
	MarkCancelled(ctx context.Context, id uuid.UUID, paymentStatus *entity.PaymentStatus) (bool, error)

	// MarkPaid conditionally sets status PAID and payment status AUTHORIZED.
	// Only PENDING orders transition; returns true when this call performed
	// it, false when the order had already settled (for example cancelled by
	// the sweeper while the payment was in flight).
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)

	// SetWebpayToken stores the gateway token and sets payment status PENDING.
	SetWebpayToken(ctx context.Context, id uuid.UUID, token string) error

	// SetPaymentStatus updates only the payment status column.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
