package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyAddresses retrieves the caller's addresses, default first.
func (srv *addressService) ListMyAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress saves an address. Marking it default unmarks the others.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if strings.TrimSpace(input.Street) == "" || strings.TrimSpace(input.City) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "street and city are required")
	}

	if input.IsDefault {
		if err := srv.addressRepo.ClearDefault(ctx, userID); err != nil {
			return nil, errors.Wrap(err, "failed to clear default address")
		}
	}

	address := &entity.Address{
		UserID:    userID,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
		Country:   input.Country,
		IsDefault: input.IsDefault,
	}
	if address.Country == "" {
		address.Country = "Chile"
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "create address")
		}

		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Debug("Address saved", slog.Any("userID", userID), slog.Any("addressID", address.ID))

	return address, nil
}
