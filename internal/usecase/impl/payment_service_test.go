package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
	mockRepo "github.com/sebvsnk/Base-E-commerce/internal/mocks/repository"
	mockSvc "github.com/sebvsnk/Base-E-commerce/internal/mocks/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Logger:    logger,
	})

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		gateway:   gateway,
	}
}

func pendingOrder(orderID uuid.UUID, total int) *entity.Order {
	return &entity.Order{
		ID:            orderID,
		CustomerEmail: "buyer@example.com",
		Status:        entity.OrderStatusPending,
		Total:         total,
	}
}

func TestPaymentService_CreateTransaction_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := pendingOrder(orderID, 39980)

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.gateway.EXPECT().
		CreateTransaction(ctx, buyOrderFor(orderID), orderID.String(), 39980).
		Return(&service.PaymentTransaction{Token: "tbk-token", URL: "https://webpay.example/init"}, nil)
	fx.orderRepo.EXPECT().SetWebpayToken(ctx, orderID, "tbk-token").Return(nil)

	output, err := fx.service.CreateTransaction(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, "tbk-token", output.Token)
	assert.Equal(t, "https://webpay.example/init", output.URL)
}

func TestPaymentService_CreateTransaction_GatewayDown(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(pendingOrder(orderID, 19990), nil)
	fx.gateway.EXPECT().
		CreateTransaction(ctx, buyOrderFor(orderID), orderID.String(), 19990).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.CreateTransaction(ctx, orderID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentCreateFailed)
}

func TestPaymentService_CreateTransaction_OrderCancelled(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Status = entity.OrderStatusCancelled

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	output, err := fx.service.CreateTransaction(ctx, orderID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderCancelled)
}

func TestPaymentService_CommitTransaction_Authorized(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(pendingOrder(orderID, 39980), nil)
	fx.gateway.EXPECT().
		CommitTransaction(ctx, "tbk-token").
		Return(&service.PaymentResult{Status: "AUTHORIZED", ResponseCode: 0, Amount: 39980}, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, orderID).Return(true, nil)

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeSuccess, output.Outcome)
	assert.Equal(t, orderID, output.OrderID)
}

func TestPaymentService_CommitTransaction_AuthorizedAfterSweepRace(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	// The sweeper cancelled and restocked the order between the status
	// check and the PAID transition. The guard refuses the transition and
	// the caller reports the cancellation; no MarkCancelled or restock
	// expectations are registered, so any such call fails the test.
	cancelled := pendingOrder(orderID, 39980)
	cancelled.Status = entity.OrderStatusCancelled

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(pendingOrder(orderID, 39980), nil)
	fx.gateway.EXPECT().
		CommitTransaction(ctx, "tbk-token").
		Return(&service.PaymentResult{Status: "AUTHORIZED", ResponseCode: 0, Amount: 39980}, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, orderID).Return(false, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(cancelled, nil)

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeFailed, output.Outcome)
	assert.Equal(t, orderID, output.OrderID)
}

func TestPaymentService_BuyOrderIsOrderIDPrefix(t *testing.T) {
	orderID := uuid.New()

	buyOrder := buyOrderFor(orderID)

	assert.Equal(t, orderID.String()[:buyOrderMaxLen], buyOrder)
	assert.LessOrEqual(t, len(buyOrder), buyOrderMaxLen)
}

func TestPaymentService_CommitTransaction_RejectedRestocks(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Items = []entity.OrderItem{{ProductID: productID, Qty: 1}}

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(order, nil)
	fx.gateway.EXPECT().
		CommitTransaction(ctx, "tbk-token").
		Return(&service.PaymentResult{Status: "FAILED", ResponseCode: -1}, nil)

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
			mockProductRepo.EXPECT().IncrementStock(ctx, productID, 1).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeFailed, output.Outcome)
}

// A replayed callback on an already cancelled order must not reach the
// gateway or touch stock a second time: no gateway, MarkCancelled or
// IncrementStock expectations are registered here, so any such call fails
// the test.
func TestPaymentService_CommitTransaction_ReplayAfterCancelIsNoop(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Status = entity.OrderStatusCancelled

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(order, nil)

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeFailed, output.Outcome)
	assert.Equal(t, orderID, output.OrderID)
}

func TestPaymentService_CommitTransaction_ReplayAfterPaidIsNoop(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Status = entity.OrderStatusPaid

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(order, nil)

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeSuccess, output.Outcome)
}

func TestPaymentService_CommitTransaction_GatewayErrorKeepsOrderPending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(pendingOrder(orderID, 19990), nil)
	fx.gateway.EXPECT().
		CommitTransaction(ctx, "tbk-token").
		Return(nil, errors.New("timeout"))

	output, err := fx.service.CommitTransaction(ctx, "tbk-token")

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestPaymentService_AbortTransaction_CancelsAndRestocks(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Items = []entity.OrderItem{{ProductID: productID, Qty: 2}}

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(order, nil)

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
			mockProductRepo.EXPECT().IncrementStock(ctx, productID, 2).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.AbortTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeAborted, output.Outcome)
}

func TestPaymentService_AbortTransaction_PaidOrderUntouched(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := pendingOrder(orderID, 19990)
	order.Status = entity.OrderStatusPaid

	fx.orderRepo.EXPECT().FindByWebpayToken(ctx, "tbk-token").Return(order, nil)

	output, err := fx.service.AbortTransaction(ctx, "tbk-token")

	require.NoError(t, err)
	assert.Equal(t, usecase.CommitOutcomeSuccess, output.Outcome)
}

func TestPaymentService_CommitTransaction_UnknownToken(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByWebpayToken(ctx, "tbk-stale").
		Return(nil, repository.ErrOrderNotFound)

	output, err := fx.service.CommitTransaction(ctx, "tbk-stale")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
