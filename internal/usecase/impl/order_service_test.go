package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	auditRepo *mockRepo.MockAuditLogRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		AuditRepo: auditRepo,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		auditRepo: auditRepo,
	}
}

func testProduct(id uuid.UUID, name string, price, stock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.CreateOrderInput{
		Email: "guest@example.com",
		Items: []usecase.OrderItemInput{{ProductID: productID, Qty: 2}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}, true).
				Return([]*entity.Product{testProduct(productID, "Teclado", 19990, 5)}, nil)
			mockProductRepo.EXPECT().
				DecrementStock(ctx, productID, 2).
				Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 39980, order.Total)
	assert.Nil(t, order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 19990, order.Items[0].PriceSnapshot)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.CreateOrderInput{
		Email: "guest@example.com",
		Items: []usecase.OrderItemInput{{ProductID: productID, Qty: 10}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}, true).
				Return([]*entity.Product{testProduct(productID, "Teclado", 19990, 3)}, nil)
			mockProductRepo.EXPECT().
				DecrementStock(ctx, productID, 10).
				Return(repository.ErrInsufficientStock)

			// The order must never reach the database: no Create expectation
			// is registered on the order repository.
			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.CreateOrderInput{
		Email: "guest@example.com",
		Items: []usecase.OrderItemInput{{ProductID: productID, Qty: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}, true).
				Return([]*entity.Product{}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProducts)
}

func TestOrderService_CreateOrder_NoItems(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		Email: "guest@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_NonPositiveQty(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		Email: "guest@example.com",
		Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Qty: 0}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetOrder_ForbiddenForOtherCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: &ownerID, Status: entity.OrderStatusPending}, nil)

	otherCustomer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	order, err := fx.service.GetOrder(ctx, otherCustomer, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_WorkerSeesAnyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: &ownerID, Status: entity.OrderStatusPending}, nil)

	worker := &entity.User{ID: uuid.New(), Role: entity.RoleWorker}
	order, err := fx.service.GetOrder(ctx, worker, orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_CancelOrder_RestocksItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()
	pending := &entity.Order{
		ID:     orderID,
		UserID: &ownerID,
		Status: entity.OrderStatusPending,
		Items:  []entity.OrderItem{{ProductID: productID, Qty: 3}},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(pending, nil).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockOrderRepo.EXPECT().
				MarkCancelled(ctx, orderID, mock.AnythingOfType("*entity.PaymentStatus")).
				Return(true, nil)
			mockProductRepo.EXPECT().
				IncrementStock(ctx, productID, 3).
				Return(nil)

			return fn(mockFactory)
		})

	fx.auditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	cancelled := &entity.Order{ID: orderID, UserID: &ownerID, Status: entity.OrderStatusCancelled}
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(cancelled, nil).Once()

	owner := &entity.User{ID: ownerID, Role: entity.RoleCustomer}
	order, err := fx.service.CancelOrder(ctx, owner, orderID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_AlreadyPaid(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: &ownerID, Status: entity.OrderStatusPaid}, nil)

	owner := &entity.User{ID: ownerID, Role: entity.RoleCustomer}
	order, err := fx.service.CancelOrder(ctx, owner, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	order, err := fx.service.UpdateOrderStatus(context.Background(), admin, uuid.New(), "SHIPPED")

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_SweepStaleOrders_ExpiresAndRestocks(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	stale := []*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusPending, Items: []entity.OrderItem{{ProductID: productID, Qty: 1}}},
		{ID: uuid.New(), Status: entity.OrderStatusPending, Items: []entity.OrderItem{{ProductID: productID, Qty: 2}}},
	}

	fx.orderRepo.EXPECT().
		ListStalePending(ctx, mock.AnythingOfType("time.Time"), defaultSweepBatch).
		Return(stale, nil)

	// The second order loses the MarkCancelled race (a payment callback
	// settled it concurrently) and must not be restocked.
	transitions := map[uuid.UUID]bool{stale[0].ID: true, stale[1].ID: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockOrderRepo.EXPECT().
				MarkCancelled(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("*entity.PaymentStatus")).
				RunAndReturn(func(ctx context.Context, id uuid.UUID, _ *entity.PaymentStatus) (bool, error) {
					return transitions[id], nil
				})
			mockProductRepo.EXPECT().
				IncrementStock(ctx, productID, mock.AnythingOfType("int")).
				Return(nil).
				Maybe()

			return fn(mockFactory)
		}).
		Times(len(stale))

	result, err := fx.service.SweepStaleOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Cancelled)
}

func TestOrderService_SweepStaleOrders_UsesReserveWindowCutoff(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	var cutoff time.Time
	fx.orderRepo.EXPECT().
		ListStalePending(ctx, mock.AnythingOfType("time.Time"), defaultSweepBatch).
		Run(func(ctx context.Context, c time.Time, _ int) {
			cutoff = c
		}).
		Return(nil, nil)

	result, err := fx.service.SweepStaleOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)
	assert.WithinDuration(t, time.Now().Add(-defaultReserveWindow), cutoff, 5*time.Second)
}
