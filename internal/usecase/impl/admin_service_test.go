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

// adminServiceFixtures holds all test dependencies for admin tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	userRepo  *mockRepo.MockUserRepository
	auditRepo *mockRepo.MockAuditLogRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		UserRepo:  userRepo,
		AuditRepo: auditRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return adminServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		hasher:    hasher,
	}
}

func TestAdminService_CreateUser_WorkerRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleWorker, user.Role)
			assert.True(t, user.IsActive)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(ctx context.Context, log *entity.AuditLog) {
			assert.Equal(t, "USER_CREATE", log.Action)
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, actorID, &usecase.RegisterInput{
		Email:    "worker@example.com",
		Password: "secret123",
		Name:     "Pedro",
	}, entity.RoleWorker)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, user.Role)
}

func TestAdminService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)

	user, err := fx.service.CreateUser(context.Background(), uuid.New(), &usecase.RegisterInput{
		Email:    "x@example.com",
		Password: "secret123",
	}, entity.Role("SUPERUSER"))

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateUser_CannotChangeOwnRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin, IsActive: true}, nil)

	role := entity.RoleCustomer
	user, err := fx.service.UpdateUser(ctx, adminID, adminID, &usecase.UpdateUserInput{Role: &role})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_UpdateUser_CannotDisableOwnAccount(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin, IsActive: true}, nil)

	inactive := false
	user, err := fx.service.UpdateUser(ctx, adminID, adminID, &usecase.UpdateUserInput{IsActive: &inactive})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_UpdateUser_DisablesOtherAccount(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleCustomer, IsActive: true}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.False(t, user.IsActive)
		}).
		Return(nil)
	fx.auditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	inactive := false
	user, err := fx.service.UpdateUser(ctx, adminID, targetID, &usecase.UpdateUserInput{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestAdminService_ListAuditLogs_ClampsLimit(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.auditRepo.EXPECT().ListRecent(ctx, defaultAuditLimit).Return([]*entity.AuditLog{}, nil)

	logs, err := fx.service.ListAuditLogs(ctx, 10_000)

	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAdminService_ResetPassword_HashesAndAudits(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actorID := uuid.New()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "trabajador@example.com", PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Hash("nueva-clave-123").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "new-hash", user.PasswordHash)
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(ctx context.Context, log *entity.AuditLog) {
			assert.Equal(t, "USER_RESET_PASSWORD", log.Action)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, actorID, userID, "nueva-clave-123")

	require.NoError(t, err)
}

func TestAdminService_ResetPassword_UnknownUser(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResetPassword(ctx, uuid.New(), userID, "nueva-clave-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
