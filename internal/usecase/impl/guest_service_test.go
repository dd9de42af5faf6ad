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
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
	mockRepo "github.com/sebvsnk/Base-E-commerce/internal/mocks/repository"
	mockSvc "github.com/sebvsnk/Base-E-commerce/internal/mocks/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// guestServiceFixtures holds all test dependencies for guest checkout tests.
type guestServiceFixtures struct {
	service      usecase.GuestCheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	otpRepo      *mockRepo.MockOrderOtpRepository
	otpService   *mockSvc.MockOtpService
	mailer       *mockSvc.MockOtpMailer
	tokenService *mockSvc.MockTokenService
}

func createTestGuestService(t *testing.T) guestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	otpRepo := mockRepo.NewMockOrderOtpRepository(t)
	otpService := mockSvc.NewMockOtpService(t)
	mailer := mockSvc.NewMockOtpMailer(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewGuestService(GuestServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		OtpRepo:      otpRepo,
		OtpService:   otpService,
		Mailer:       mailer,
		TokenService: tokenService,
		Logger:       logger,
	})

	return guestServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		otpRepo:      otpRepo,
		otpService:   otpService,
		mailer:       mailer,
		tokenService: tokenService,
	}
}

func guestOrder(orderID uuid.UUID, email string) *entity.Order {
	return &entity.Order{
		ID:            orderID,
		CustomerEmail: email,
		Status:        entity.OrderStatusPending,
	}
}

func TestGuestService_RequestOtp_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().FindLatestActive(ctx, orderID, email).Return(nil, repository.ErrOtpNotFound)
	fx.otpService.EXPECT().GenerateCode().Return("123456", nil)
	fx.otpService.EXPECT().HashCode("123456").Return("hash-of-123456")
	fx.otpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OrderOtp")).
		Run(func(ctx context.Context, otp *entity.OrderOtp) {
			assert.Equal(t, orderID, otp.OrderID)
			assert.Equal(t, email, otp.Email)
			assert.Equal(t, "hash-of-123456", otp.CodeHash)
			assert.WithinDuration(t, time.Now().Add(defaultOtpTTL), otp.ExpiresAt, 5*time.Second)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendOtp(email, "123456").Return(nil)

	err := fx.service.RequestOtp(ctx, &usecase.GuestOtpInput{OrderID: orderID, Email: email})

	require.NoError(t, err)
}

func TestGuestService_RequestOtp_EmailMismatch(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, "real@example.com"), nil)

	err := fx.service.RequestOtp(ctx, &usecase.GuestOtpInput{OrderID: orderID, Email: "probe@example.com"})

	// Mismatches look exactly like unknown orders.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestGuestService_RequestOtp_RegisteredUserOrder(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	order := guestOrder(orderID, "customer@example.com")
	order.UserID = &userID

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	err := fx.service.RequestOtp(ctx, &usecase.GuestOtpInput{OrderID: orderID, Email: "customer@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestGuestService_RequestOtp_Cooldown(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"

	// A code was sent seconds ago; hammering the request endpoint must not
	// issue or email another one.
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:         uuid.New(),
			OrderID:    orderID,
			Email:      email,
			LastSentAt: time.Now().Add(-10 * time.Second),
			ExpiresAt:  time.Now().Add(defaultOtpTTL),
		}, nil)

	err := fx.service.RequestOtp(ctx, &usecase.GuestOtpInput{OrderID: orderID, Email: email})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpResendCooldown)
}

func TestGuestService_ResendOtp_Cooldown(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:         uuid.New(),
			OrderID:    orderID,
			Email:      email,
			LastSentAt: time.Now().Add(-10 * time.Second),
			ExpiresAt:  time.Now().Add(defaultOtpTTL),
		}, nil)

	err := fx.service.ResendOtp(ctx, &usecase.GuestOtpInput{OrderID: orderID, Email: email})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOtpResendCooldown)
}

func TestGuestService_VerifyOtp_Success(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	otpID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:        otpID,
			OrderID:   orderID,
			Email:     email,
			CodeHash:  "stored-hash",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpService.EXPECT().VerifyCode("123456", "stored-hash").Return(true)
	fx.otpRepo.EXPECT().Consume(ctx, otpID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.tokenService.EXPECT().GenerateGuestOrderToken(orderID, email).Return("guest-token", nil)

	output, err := fx.service.VerifyOtp(ctx, &usecase.VerifyOtpInput{
		OrderID: orderID,
		Email:   email,
		Code:    "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "guest-token", output.GuestToken)
	assert.Equal(t, orderID, output.Order.ID)
}

func TestGuestService_VerifyOtp_WrongCodeCountsAttempt(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	otpID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:        otpID,
			OrderID:   orderID,
			Email:     email,
			CodeHash:  "stored-hash",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpService.EXPECT().VerifyCode("000000", "stored-hash").Return(false)
	fx.otpRepo.EXPECT().IncrementAttempts(ctx, otpID).Return(nil)

	output, err := fx.service.VerifyOtp(ctx, &usecase.VerifyOtpInput{
		OrderID: orderID,
		Email:   email,
		Code:    "000000",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOtpInvalid)
}

func TestGuestService_VerifyOtp_Expired(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:        uuid.New(),
			OrderID:   orderID,
			Email:     email,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	output, err := fx.service.VerifyOtp(ctx, &usecase.VerifyOtpInput{
		OrderID: orderID,
		Email:   email,
		Code:    "123456",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOtpExpired)
}

func TestGuestService_VerifyOtp_TooManyAttempts(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:        uuid.New(),
			OrderID:   orderID,
			Email:     email,
			Attempts:  defaultOtpMaxAttempts,
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)

	output, err := fx.service.VerifyOtp(ctx, &usecase.VerifyOtpInput{
		OrderID: orderID,
		Email:   email,
		Code:    "123456",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOtpTooManyAttempts)
}

func TestGuestService_VerifyOtp_ConsumeRaceLoses(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	otpID := uuid.New()
	email := "guest@example.com"

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, email), nil)
	fx.otpRepo.EXPECT().
		FindLatestActive(ctx, orderID, email).
		Return(&entity.OrderOtp{
			ID:        otpID,
			OrderID:   orderID,
			Email:     email,
			CodeHash:  "stored-hash",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpService.EXPECT().VerifyCode("123456", "stored-hash").Return(true)
	fx.otpRepo.EXPECT().
		Consume(ctx, otpID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrOtpNotFound)

	output, err := fx.service.VerifyOtp(ctx, &usecase.VerifyOtpInput{
		OrderID: orderID,
		Email:   email,
		Code:    "123456",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOtpInvalid)
}

func TestGuestService_GetGuestOrder_EmailMismatch(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(guestOrder(orderID, "real@example.com"), nil)

	order, err := fx.service.GetGuestOrder(ctx, &service.GuestOrderClaims{
		OrderID: orderID,
		Email:   "other@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrGuestTokenInvalid)
}

func TestGuestService_CancelGuestOrder_RestocksOnce(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	email := "guest@example.com"
	order := guestOrder(orderID, email)
	order.Items = []entity.OrderItem{{ProductID: productID, Qty: 2}}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil).Once()

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

	cancelled := guestOrder(orderID, email)
	cancelled.Status = entity.OrderStatusCancelled
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(cancelled, nil).Once()

	result, err := fx.service.CancelGuestOrder(ctx, &service.GuestOrderClaims{OrderID: orderID, Email: email})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, result.Status)
}

func TestGuestService_CancelGuestOrder_AlreadyPaid(t *testing.T) {
	fx := createTestGuestService(t)

	ctx := context.Background()
	orderID := uuid.New()
	email := "guest@example.com"
	order := guestOrder(orderID, email)
	order.Status = entity.OrderStatusPaid

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	result, err := fx.service.CancelGuestOrder(ctx, &service.GuestOrderClaims{OrderID: orderID, Email: email})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
}
