package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput carries a new saved shipping address.
type CreateAddressInput struct {
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	IsDefault bool
}

// AddressUsecase defines the interface for saved shipping addresses.
type AddressUsecase interface {
	// ListMyAddresses retrieves the caller's addresses, default first.
	ListMyAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// CreateAddress saves an address. Marking it default unmarks the others.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
}
