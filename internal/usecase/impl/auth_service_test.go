package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	mockRepo "github.com/sebvsnk/Base-E-commerce/internal/mocks/repository"
	mockSvc "github.com/sebvsnk/Base-E-commerce/internal/mocks/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "cliente@example.com", user.Email)
			assert.Equal(t, "hashed-secret", user.PasswordHash)
			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.True(t, user.IsActive)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).
		Return("access-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    " Cliente@Example.com ",
		Password: "secret123",
		Name:     "Ana",
		LastName: "Rojas",
		Phone:    "+56912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestAuthService_Register_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "cliente@example.com",
		Password: "secret123",
		Phone:    "912345678",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyExists)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "cliente@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "worker@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "worker@example.com",
			PasswordHash: "hashed-secret",
			Role:         entity.RoleWorker,
			IsActive:     true,
		}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(userID, entity.RoleWorker).Return("access-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Worker@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

// Unknown emails and wrong passwords fail with the same error so login
// cannot be used to enumerate accounts.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "cliente@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "cliente@example.com",
			PasswordHash: "hashed-secret",
			Role:         entity.RoleCustomer,
			IsActive:     true,
		}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "cliente@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "baja@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "baja@example.com",
			PasswordHash: "hashed-secret",
			Role:         entity.RoleCustomer,
			IsActive:     false,
		}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "baja@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Me(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
