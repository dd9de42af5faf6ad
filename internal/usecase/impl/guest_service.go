package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sebvsnk/Base-E-commerce/config"
	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOtpTTL            = 10 * time.Minute
	defaultOtpResendCooldown = 60 * time.Second
	defaultOtpMaxAttempts    = 5
)

// guestService implements the GuestCheckoutUsecase interface.
type guestService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	otpRepo        repository.OrderOtpRepository
	otpService     service.OtpService
	mailer         service.OtpMailer
	tokenService   service.TokenService
	ttl            time.Duration
	resendCooldown time.Duration
	maxAttempts    int
	logger         *slog.Logger
}

// GuestServiceParams holds dependencies for guestService, injected by Fx.
type GuestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	OtpRepo      repository.OrderOtpRepository
	OtpService   service.OtpService
	Mailer       service.OtpMailer
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewGuestService is the constructor for guestService.
func NewGuestService(params GuestServiceParams) usecase.GuestCheckoutUsecase {
	ttl := defaultOtpTTL
	resendCooldown := defaultOtpResendCooldown
	maxAttempts := defaultOtpMaxAttempts
	if params.Config != nil && params.Config.Otp != nil {
		if params.Config.Otp.TTL > 0 {
			ttl = params.Config.Otp.TTL
		}
		if params.Config.Otp.ResendCooldown > 0 {
			resendCooldown = params.Config.Otp.ResendCooldown
		}
		if params.Config.Otp.MaxAttempts > 0 {
			maxAttempts = params.Config.Otp.MaxAttempts
		}
	}

	return &guestService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		otpRepo:        params.OtpRepo,
		otpService:     params.OtpService,
		mailer:         params.Mailer,
		tokenService:   params.TokenService,
		ttl:            ttl,
		resendCooldown: resendCooldown,
		maxAttempts:    maxAttempts,
		logger:         params.Logger,
	}
}

func (srv *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOtp issues a code for the order and emails it. The cooldown applies
// here too, not just on resend, so repeated requests cannot flood a mailbox.
func (srv *guestService) RequestOtp(ctx context.Context, input *usecase.GuestOtpInput) error {
	order, err := srv.loadGuestOrder(ctx, input.OrderID, input.Email)
	if err != nil {
		return err
	}

	if err := srv.checkCooldown(ctx, order); err != nil {
		return err
	}

	return srv.issueOtp(ctx, order)
}

// ResendOtp issues a fresh code, honoring the resend cooldown.
func (srv *guestService) ResendOtp(ctx context.Context, input *usecase.GuestOtpInput) error {
	order, err := srv.loadGuestOrder(ctx, input.OrderID, input.Email)
	if err != nil {
		return err
	}

	if err := srv.checkCooldown(ctx, order); err != nil {
		return err
	}

	return srv.issueOtp(ctx, order)
}

// checkCooldown rejects a new issuance while the latest code was sent less
// than resendCooldown ago.
func (srv *guestService) checkCooldown(ctx context.Context, order *entity.Order) error {
	active, err := srv.otpRepo.FindLatestActive(ctx, order.ID, order.CustomerEmail)
	if err != nil && !errors.Is(err, repository.ErrOtpNotFound) {
		return errors.Wrap(err, "failed to load active otp")
	}
	if active != nil && time.Since(active.LastSentAt) < srv.resendCooldown {
		return errors.Wrap(domainerrors.ErrOtpResendCooldown, "otp cooldown")
	}

	return nil
}

// VerifyOtp checks the code and, on success, consumes it and returns a guest
// token scoped to the order and email.
func (srv *guestService) VerifyOtp(ctx context.Context, input *usecase.VerifyOtpInput) (*usecase.GuestSessionOutput, error) {
	order, err := srv.loadGuestOrder(ctx, input.OrderID, input.Email)
	if err != nil {
		return nil, err
	}

	otp, err := srv.otpRepo.FindLatestActive(ctx, order.ID, order.CustomerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrOtpNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOtpNotFound, "verify otp")
		}

		return nil, errors.Wrap(err, "failed to load active otp")
	}

	if time.Now().After(otp.ExpiresAt) {
		return nil, errors.Wrap(domainerrors.ErrOtpExpired, "verify otp")
	}
	if otp.Attempts >= srv.maxAttempts {
		return nil, errors.Wrap(domainerrors.ErrOtpTooManyAttempts, "verify otp")
	}

	if !srv.otpService.VerifyCode(input.Code, otp.CodeHash) {
		if err := srv.otpRepo.IncrementAttempts(ctx, otp.ID); err != nil {
			srv.log(ctx).Warn("Failed to count otp attempt", slog.Any("otpID", otp.ID), slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrOtpInvalid, "verify otp")
	}

	// Consume is guarded on consumed_at IS NULL, so a concurrent verification
	// of the same code loses here and the code stays single-use.
	if err := srv.otpRepo.Consume(ctx, otp.ID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrOtpNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOtpInvalid, "verify otp")
		}

		return nil, errors.Wrap(err, "failed to consume otp")
	}

	guestToken, err := srv.tokenService.GenerateGuestOrderToken(order.ID, order.CustomerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate guest token")
	}

	srv.log(ctx).Info("Guest otp verified", slog.Any("orderID", order.ID))

	return &usecase.GuestSessionOutput{
		GuestToken: guestToken,
		Order:      order,
	}, nil
}

// GetGuestOrder retrieves the order a guest token grants access to.
func (srv *guestService) GetGuestOrder(ctx context.Context, claims *service.GuestOrderClaims) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, claims.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "get guest order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !strings.EqualFold(order.CustomerEmail, claims.Email) {
		return nil, errors.Wrap(domainerrors.ErrGuestTokenInvalid, "get guest order")
	}

	return order, nil
}

// CancelGuestOrder cancels the order a guest token grants access to and
// restocks its lines.
func (srv *guestService) CancelGuestOrder(ctx context.Context, claims *service.GuestOrderClaims) (*entity.Order, error) {
	order, err := srv.GetGuestOrder(ctx, claims)
	if err != nil {
		return nil, err
	}

	if order.Status == entity.OrderStatusPaid {
		return nil, errors.Wrap(domainerrors.ErrOrderAlreadyPaid, "cancel guest order")
	}

	paymentStatus := entity.PaymentStatusCancelledByGuest
	transitioned, err := cancelAndRestock(ctx, srv.txManager, order, &paymentStatus)
	if err != nil {
		return nil, err
	}
	if transitioned {
		srv.log(ctx).Info("Guest order cancelled", slog.Any("orderID", order.ID))
	}

	return srv.GetGuestOrder(ctx, claims)
}

// loadGuestOrder resolves a guest-accessible order. Unknown orders and email
// mismatches fail identically so the endpoint cannot be used to probe which
// emails placed which orders.
func (srv *guestService) loadGuestOrder(ctx context.Context, orderID uuid.UUID, email string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "load guest order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != nil || !strings.EqualFold(order.CustomerEmail, email) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "load guest order")
	}

	return order, nil
}

// issueOtp generates, stores and emails a fresh code.
func (srv *guestService) issueOtp(ctx context.Context, order *entity.Order) error {
	code, err := srv.otpService.GenerateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp code")
	}

	now := time.Now()
	otp := &entity.OrderOtp{
		OrderID:    order.ID,
		Email:      order.CustomerEmail,
		CodeHash:   srv.otpService.HashCode(code),
		ExpiresAt:  now.Add(srv.ttl),
		LastSentAt: now,
	}

	if err := srv.otpRepo.Create(ctx, otp); err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	if err := srv.mailer.SendOtp(order.CustomerEmail, code); err != nil {
		return errors.Wrap(err, "failed to send otp email")
	}

	srv.log(ctx).Info("Guest otp issued", slog.Any("orderID", order.ID))

	return nil
}
