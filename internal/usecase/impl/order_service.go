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
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReserveWindow = 30 * time.Minute
	defaultSweepBatch    = 50
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	auditRepo     repository.AuditLogRepository
	reserveWindow time.Duration
	sweepBatch    int
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	AuditRepo repository.AuditLogRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	reserveWindow := defaultReserveWindow
	sweepBatch := defaultSweepBatch
	if params.Config != nil && params.Config.Orders != nil {
		if params.Config.Orders.ReserveWindow > 0 {
			reserveWindow = params.Config.Orders.ReserveWindow
		}
		if params.Config.Orders.SweepBatch > 0 {
			sweepBatch = params.Config.Orders.SweepBatch
		}
	}

	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		auditRepo:     params.AuditRepo,
		reserveWindow: reserveWindow,
		sweepBatch:    sweepBatch,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder atomically reserves stock for every line and persists the order
// as PENDING. Reservation and insertion share one transaction: if any line
// cannot be served the whole order rolls back and no stock moves.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order has no items")
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
	}

	srv.log(ctx).Info("Creating order",
		slog.String("email", input.Email),
		slog.Int("lines", len(input.Items)),
		slog.Bool("guest", input.UserID == nil))

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		products, err := srv.loadOrderProducts(ctx, productRepo, input.Items)
		if err != nil {
			return err
		}

		total := 0
		orderItems := make([]entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			product := products[item.ProductID]

			// Conditional decrement: matches only while stock >= qty and the
			// product is active. Zero rows means the line cannot be served.
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Qty); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
				}

				return errors.Wrap(err, "failed to reserve stock")
			}

			total += product.Price * item.Qty
			orderItems = append(orderItems, entity.OrderItem{
				ProductID:     item.ProductID,
				Qty:           item.Qty,
				PriceSnapshot: product.Price,
			})
		}

		order := &entity.Order{
			UserID:          input.UserID,
			CustomerEmail:   input.Email,
			Total:           total,
			Status:          entity.OrderStatusPending,
			ShippingAddress: input.ShippingAddress,
			Items:           orderItems,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", createdOrder.ID),
		slog.Int("total", createdOrder.Total))

	return createdOrder, nil
}

// loadOrderProducts resolves every requested line to an active product, or
// fails with the IDs that could not be resolved.
func (srv *orderService) loadOrderProducts(
	ctx context.Context,
	productRepo repository.ProductRepository,
	items []usecase.OrderItemInput,
) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if seen[item.ProductID] {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "duplicate product in order")
		}
		seen[item.ProductID] = true
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	if len(byID) != len(ids) {
		missing := make([]string, 0)
		for _, id := range ids {
			if byID[id] == nil {
				missing = append(missing, id.String())
			}
		}

		return nil, domainerrors.ErrInvalidProducts.WithDetails("unknown or inactive products: " +
			strings.Join(missing, ", "))
	}

	return byID, nil
}

// GetOrder retrieves an order for its owner, or for staff.
func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !canAccessOrder(actor, order) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another customer")
	}

	return order, nil
}

// ListMyOrders retrieves the caller's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}

// ListOrders retrieves a page of all orders for staff.
func (srv *orderService) ListOrders(ctx context.Context, page, limit int) (*usecase.OrderListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	orders, total, err := srv.orderRepo.List(ctx, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// CancelOrder cancels a PENDING order and restocks its lines.
func (srv *orderService) CancelOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !canAccessOrder(actor, order) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another customer")
	}
	if order.Status == entity.OrderStatusPaid {
		return nil, errors.Wrap(domainerrors.ErrOrderAlreadyPaid, "cancel order")
	}

	paymentStatus := entity.PaymentStatusCancelledByCustomer
	transitioned, err := cancelAndRestock(ctx, srv.txManager, order, &paymentStatus)
	if err != nil {
		return nil, err
	}

	if transitioned {
		srv.log(ctx).Info("Order cancelled", slog.Any("orderID", orderID), slog.Any("actorID", actor.ID))
		recordAudit(ctx, srv.log(ctx), srv.auditRepo, actor.ID, "ORDER_CANCEL", "Order", orderID.String(), nil)
	}

	return srv.findOrder(ctx, orderID)
}

// UpdateOrderStatus lets staff move an order between lifecycle states.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid order status")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, errors.Wrap(domainerrors.ErrOrderCancelled, "update order status")
	}

	if status == entity.OrderStatusCancelled {
		// Staff cancellation goes through the restocking path so reserved
		// units are returned.
		if _, err := cancelAndRestock(ctx, srv.txManager, order, nil); err != nil {
			return nil, err
		}
	} else if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actor.ID, "ORDER_STATUS_UPDATE", "Order", orderID.String(),
		map[string]any{"from": string(order.Status), "to": string(status)})

	return srv.findOrder(ctx, orderID)
}

// SweepStaleOrders cancels and restocks PENDING orders whose payment never
// progressed within the reserve window. Each order is handled in its own
// transaction so one failure does not block the rest of the batch.
func (srv *orderService) SweepStaleOrders(ctx context.Context) (*usecase.SweepResult, error) {
	cutoff := time.Now().Add(-srv.reserveWindow)

	stale, err := srv.orderRepo.ListStalePending(ctx, cutoff, srv.sweepBatch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale pending orders")
	}

	result := &usecase.SweepResult{Scanned: len(stale)}
	paymentStatus := entity.PaymentStatusExpired
	for _, order := range stale {
		transitioned, err := cancelAndRestock(ctx, srv.txManager, order, &paymentStatus)
		if err != nil {
			srv.log(ctx).Error("Failed to expire stale order", slog.Any("orderID", order.ID), slog.Any("error", err))

			continue
		}
		if transitioned {
			result.Cancelled++
			srv.log(ctx).Info("Stale order expired and restocked", slog.Any("orderID", order.ID))
		}
	}

	return result, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "find order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// canAccessOrder reports whether the actor may view or cancel the order.
// Staff may access every order; customers only their own.
func canAccessOrder(actor *entity.User, order *entity.Order) bool {
	if actor == nil {
		return false
	}
	if actor.Role == entity.RoleAdmin || actor.Role == entity.RoleWorker {
		return true
	}

	return order.UserID != nil && *order.UserID == actor.ID
}
