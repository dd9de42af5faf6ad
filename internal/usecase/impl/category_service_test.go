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
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	auditRepo    *mockRepo.MockAuditLogRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		AuditRepo:    auditRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
	}
}

func TestCategoryService_CreateCategory_Conflict(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryConflict)

	category, err := fx.service.CreateCategory(ctx, uuid.New(), &usecase.SaveCategoryInput{
		Name: "Poleras",
		Slug: "poleras",
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryConflict)
}

func TestCategoryService_CreateCategory_RecordsAudit(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(ctx context.Context, log *entity.AuditLog) {
			assert.Equal(t, "CATEGORY_CREATE", log.Action)
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, actorID, &usecase.SaveCategoryInput{
		Name: "Poleras",
		Slug: "poleras",
	})

	require.NoError(t, err)
	assert.Equal(t, "Poleras", category.Name)
}

func TestCategoryService_DeleteCategory_InUse(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, categoryID).Return(repository.ErrCategoryInUse)

	err := fx.service.DeleteCategory(ctx, uuid.New(), categoryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}
