package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// PaymentRedirectOutput tells the storefront where to send the buyer.
type PaymentRedirectOutput struct {
	Token string
	URL   string
}

// CommitOutcome is the terminal state of a payment callback.
type CommitOutcome string

const (
	CommitOutcomeSuccess CommitOutcome = "success"
	CommitOutcomeFailed  CommitOutcome = "failed"
	CommitOutcomeAborted CommitOutcome = "aborted"
)

// CommitResultOutput summarizes a processed payment callback.
type CommitResultOutput struct {
	Outcome CommitOutcome
	OrderID uuid.UUID
}

// PaymentUsecase defines the interface for the Webpay card payment flow.
type PaymentUsecase interface {
	// CreateTransaction registers a Webpay transaction for a PENDING order
	// and returns the payment form redirect.
	CreateTransaction(ctx context.Context, orderID uuid.UUID) (*PaymentRedirectOutput, error)

	// CommitTransaction reconciles the gateway callback for token. A
	// successful commit marks the order PAID; a rejected one cancels it and
	// restocks exactly once.
	CommitTransaction(ctx context.Context, token string) (*CommitResultOutput, error)

	// AbortTransaction handles the buyer backing out of the payment form,
	// cancelling the order and restocking exactly once.
	AbortTransaction(ctx context.Context, token string) (*CommitResultOutput, error)
}
