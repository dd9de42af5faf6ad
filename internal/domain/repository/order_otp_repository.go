package repository

import (
	"context"
	"time"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOtpNotFound is returned when no active OTP exists for an order and email.
var ErrOtpNotFound = errors.New("otp not found")

// OrderOtpRepository defines the interface for guest checkout OTP persistence.
type OrderOtpRepository interface {
	// Create persists a freshly issued OTP.
	Create(ctx context.Context, otp *entity.OrderOtp) error

	// FindLatestActive retrieves the most recently sent unconsumed OTP for
	// the order and email, or ErrOtpNotFound.
	FindLatestActive(ctx context.Context, orderID uuid.UUID, email string) (*entity.OrderOtp, error)

	// IncrementAttempts bumps the failed attempt counter.
	IncrementAttempts(ctx context.Context, id uuid.UUID) error

	// Consume stamps the OTP as used.
	Consume(ctx context.Context, id uuid.UUID, at time.Time) error
}
