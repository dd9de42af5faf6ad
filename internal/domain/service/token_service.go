package service

import (
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by a logged-in user's access token.
type AccessClaims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// GuestOrderClaims are the claims of a guest order token. The token grants
// read/cancel access to exactly one order owned by one email address.
type GuestOrderClaims struct {
	OrderID uuid.UUID
	Email   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// GenerateGuestOrderToken creates a short-lived token scoped to one
	// order and email, issued after OTP verification.
	GenerateGuestOrderToken(orderID uuid.UUID, email string) (string, error)

	// ValidateGuestOrderToken checks a guest order token and returns its claims.
	ValidateGuestOrderToken(tokenString string) (*GuestOrderClaims, error)
}
