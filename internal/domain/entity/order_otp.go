package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderOtp is a one-time code issued to a guest so they can prove ownership
// of an order placed with their email. Only the HMAC of the code is stored.
type OrderOtp struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Email      string
	CodeHash   string // Hex-encoded HMAC-SHA256 of the six digit code.
	ExpiresAt  time.Time
	Attempts   int        // Failed verification attempts against this code.
	ConsumedAt *time.Time // Set exactly once, on successful verification.
	LastSentAt time.Time  // Drives the resend cooldown.
	CreatedAt  time.Time
}
