package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	mockRepo "github.com/sebvsnk/Base-E-commerce/internal/mocks/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressService(t *testing.T) (usecase.AddressUsecase, *mockRepo.MockAddressRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		Logger:      logger,
	})

	return service, addressRepo
}

func TestAddressService_CreateAddress_DefaultUnmarksOthers(t *testing.T) {
	service, addressRepo := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	addressRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(ctx context.Context, address *entity.Address) {
			assert.True(t, address.IsDefault)
			assert.Equal(t, "Chile", address.Country)
		}).
		Return(nil)

	address, err := service.CreateAddress(ctx, userID, &usecase.CreateAddressInput{
		Street:    "Av. Providencia 1234",
		City:      "Santiago",
		State:     "RM",
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_CreateAddress_MissingStreet(t *testing.T) {
	service, _ := createTestAddressService(t)

	address, err := service.CreateAddress(context.Background(), uuid.New(), &usecase.CreateAddressInput{
		Street: "   ",
		City:   "Santiago",
	})

	require.Error(t, err)
	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_ListMyAddresses(t *testing.T) {
	service, addressRepo := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	addressRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.Address{{UserID: userID, Street: "Av. Providencia 1234", IsDefault: true}}, nil)

	addresses, err := service.ListMyAddresses(ctx, userID)

	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.True(t, addresses[0].IsDefault)
}
