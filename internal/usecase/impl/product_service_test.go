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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for catalog tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	auditRepo   *mockRepo.MockAuditLogRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		AuditRepo:   auditRepo,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		auditRepo:   auditRepo,
	}
}

func TestProductService_ListProducts_DefaultsPaging(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Run(func(ctx context.Context, filter repository.ProductFilter) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, defaultPageLimit, filter.Limit)
			assert.True(t, filter.ActiveOnly)
		}).
		Return([]*entity.Product{{Name: "Polera"}}, int64(1), nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: 0, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, defaultPageLimit, output.Limit)
}

func TestProductService_GetProduct_CountsView(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Polera", Views: 7}, nil)
	fx.productRepo.EXPECT().IncrementViews(ctx, productID).Return(nil)

	product, err := fx.service.GetProduct(ctx, productID, true)

	require.NoError(t, err)
	assert.Equal(t, 8, product.Views)
}

func TestProductService_GetProduct_ViewBumpFailureIsNotFatal(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Polera", Views: 7}, nil)
	fx.productRepo.EXPECT().IncrementViews(ctx, productID).Return(errors.New("deadlock"))

	product, err := fx.service.GetProduct(ctx, productID, true)

	require.NoError(t, err)
	assert.Equal(t, 7, product.Views)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID, false)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_RecordsAudit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(ctx context.Context, log *entity.AuditLog) {
			assert.Equal(t, "PRODUCT_CREATE", log.Action)
			require.NotNil(t, log.ActorID)
			assert.Equal(t, actorID, *log.ActorID)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, actorID, &usecase.SaveProductInput{
		Name:     "Polera",
		Price:    19990,
		Stock:    10,
		IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Polera", product.Name)
}

func TestProductService_DeleteProduct_SalesHistoryBlocks(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductReferenced)

	err := fx.service.DeleteProduct(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductHasSalesHistory)
}

func TestProductService_DisableProduct_HidesAndAudits(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	actorID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Polera", IsActive: true}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.False(t, product.IsActive)
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Run(func(ctx context.Context, log *entity.AuditLog) {
			assert.Equal(t, "PRODUCT_DISABLE", log.Action)
		}).
		Return(nil)

	product, err := fx.service.DisableProduct(ctx, actorID, productID)

	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestProductService_DisableProduct_AlreadyInactiveIsNoop(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: false}, nil)

	product, err := fx.service.DisableProduct(ctx, uuid.New(), productID)

	require.NoError(t, err)
	assert.False(t, product.IsActive)
}
