package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GuestOtpInput identifies the order a guest wants to access.
type GuestOtpInput struct {
	OrderID uuid.UUID
	Email   string
}

// VerifyOtpInput carries the submitted verification code.
type VerifyOtpInput struct {
	OrderID uuid.UUID
	Email   string
	Code    string
}

// --- Output DTOs ---

// GuestSessionOutput returns the short-lived token scoped to one order.
type GuestSessionOutput struct {
	GuestToken string
	Order      *entity.Order
}

// GuestCheckoutUsecase defines the interface for the email OTP flow that lets
// guests view and cancel orders placed without an account.
type GuestCheckoutUsecase interface {
	// RequestOtp issues a code for the order and emails it. The order must
	// have been placed with the given email.
	RequestOtp(ctx context.Context, input *GuestOtpInput) error

	// ResendOtp issues a fresh code, honoring the resend cooldown.
	ResendOtp(ctx context.Context, input *GuestOtpInput) error

	// VerifyOtp checks the code and, on success, consumes it and returns a
	// guest token scoped to the order and email.
	VerifyOtp(ctx context.Context, input *VerifyOtpInput) (*GuestSessionOutput, error)

	// GetGuestOrder retrieves the order a guest token grants access to.
	GetGuestOrder(ctx context.Context, claims *service.GuestOrderClaims) (*entity.Order, error)

	// CancelGuestOrder cancels the order a guest token grants access to and
	// restocks its lines.
	CancelGuestOrder(ctx context.Context, claims *service.GuestOrderClaims) (*entity.Order, error)
}
