package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for saved shipping addresses.
type AddressRepository interface {
	// ListByUser retrieves a user's addresses, default address first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// ClearDefault unsets the default flag on all of a user's addresses.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
