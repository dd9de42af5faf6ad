package impl

import (
	"context"
	"log/slog"

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

// Webpay caps buy_order at 26 characters; the UUID prefix stays unique
// enough to trace back in logs.
const buyOrderMaxLen = 26

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction registers a Webpay transaction for a PENDING order and
// returns the payment form redirect.
func (srv *paymentService) CreateTransaction(ctx context.Context, orderID uuid.UUID) (*usecase.PaymentRedirectOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "create payment")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	switch order.Status {
	case entity.OrderStatusPaid:
		return nil, errors.Wrap(domainerrors.ErrOrderAlreadyPaid, "create payment")
	case entity.OrderStatusCancelled:
		return nil, errors.Wrap(domainerrors.ErrOrderCancelled, "create payment")
	case entity.OrderStatusPending:
	}

	transaction, err := srv.gateway.CreateTransaction(ctx, buyOrderFor(order.ID), order.ID.String(), order.Total)
	if err != nil {
		srv.log(ctx).Error("Webpay create failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentCreateFailed, "create payment")
	}

	if err := srv.orderRepo.SetWebpayToken(ctx, order.ID, transaction.Token); err != nil {
		return nil, errors.Wrap(err, "failed to store webpay token")
	}

	srv.log(ctx).Info("Payment transaction created", slog.Any("orderID", order.ID))

	return &usecase.PaymentRedirectOutput{
		Token: transaction.Token,
		URL:   transaction.URL,
	}, nil
}

// CommitTransaction reconciles the gateway callback for token. A successful
// commit marks the order PAID; a rejected one cancels it and restocks
// exactly once. The callback may arrive more than once (browser refresh,
// gateway retry) and must stay safe to replay.
func (srv *paymentService) CommitTransaction(ctx context.Context, token string) (*usecase.CommitResultOutput, error) {
	order, err := srv.orderRepo.FindByWebpayToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "commit payment")
		}

		return nil, errors.Wrap(err, "failed to find order by token")
	}

	// Replayed callback on a settled order: report the terminal state
	// without touching the gateway or stock again.
	switch order.Status {
	case entity.OrderStatusPaid:
		return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeSuccess, OrderID: order.ID}, nil
	case entity.OrderStatusCancelled:
		return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeFailed, OrderID: order.ID}, nil
	case entity.OrderStatusPending:
	}

	result, err := srv.gateway.CommitTransaction(ctx, token)
	if err != nil {
		srv.log(ctx).Error("Webpay commit failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		// The gateway could not confirm: leave the order PENDING so the
		// sweeper settles it if no retry arrives.
		return nil, errors.Wrap(err, "failed to commit webpay transaction")
	}

	if result.Authorized() {
		paid, err := srv.orderRepo.MarkPaid(ctx, order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark order paid")
		}
		if !paid {
			// Lost the race: the order settled (sweeper or guest cancel)
			// between the status check above and this transition. Report
			// the state it actually ended in instead of resurrecting it.
			return srv.settledOutcome(ctx, order.ID)
		}
		srv.log(ctx).Info("Payment authorized", slog.Any("orderID", order.ID), slog.Int("amount", result.Amount))

		return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeSuccess, OrderID: order.ID}, nil
	}

	paymentStatus := entity.PaymentStatusFailed
	if _, err := cancelAndRestock(ctx, srv.txManager, order, &paymentStatus); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Payment rejected, order cancelled",
		slog.Any("orderID", order.ID),
		slog.Int("responseCode", result.ResponseCode))

	return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeFailed, OrderID: order.ID}, nil
}

// AbortTransaction handles the buyer backing out of the payment form.
func (srv *paymentService) AbortTransaction(ctx context.Context, token string) (*usecase.CommitResultOutput, error) {
	order, err := srv.orderRepo.FindByWebpayToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "abort payment")
		}

		return nil, errors.Wrap(err, "failed to find order by token")
	}

	if order.Status == entity.OrderStatusPaid {
		return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeSuccess, OrderID: order.ID}, nil
	}

	paymentStatus := entity.PaymentStatusCancelledByCustomer
	if _, err := cancelAndRestock(ctx, srv.txManager, order, &paymentStatus); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Payment aborted by buyer", slog.Any("orderID", order.ID))

	return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeAborted, OrderID: order.ID}, nil
}

// settledOutcome re-reads an order that refused a transition and maps its
// terminal state to a commit outcome.
func (srv *paymentService) settledOutcome(ctx context.Context, orderID uuid.UUID) (*usecase.CommitResultOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	if order.Status == entity.OrderStatusPaid {
		return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeSuccess, OrderID: order.ID}, nil
	}

	srv.log(ctx).Warn("Payment authorized for an already settled order",
		slog.Any("orderID", order.ID),
		slog.String("status", string(order.Status)))

	return &usecase.CommitResultOutput{Outcome: usecase.CommitOutcomeFailed, OrderID: order.ID}, nil
}

func buyOrderFor(orderID uuid.UUID) string {
	buyOrder := orderID.String()
	if len(buyOrder) > buyOrderMaxLen {
		buyOrder = buyOrder[:buyOrderMaxLen]
	}

	return buyOrder
}
