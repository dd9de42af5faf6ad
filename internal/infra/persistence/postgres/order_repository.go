package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidProducts
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its items and their products.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByWebpayToken retrieves the order holding the given gateway token.
func (repo *orderRepository) FindByWebpayToken(ctx context.Context, token string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("webpay_token = ?", token).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by webpay token")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves a user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// List retrieves a page of all orders plus the total count, newest first.
func (repo *orderRepository) List(ctx context.Context, page, limit int) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	if page < 1 {
		page = 1
	}

	query := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("User").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(orderModels), total, nil
}

// ListStalePending retrieves up to limit PENDING orders created before cutoff
// whose payment never progressed, oldest first.
func (repo *orderRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", entity.OrderStatusPending).
		Where("created_at < ?", cutoff).
		Where("payment_status IS NULL OR payment_status = ?", entity.PaymentStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stale pending orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// UpdateStatus unconditionally sets the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkCancelled conditionally flips the order to CANCELLED. The guard keeps
// the transition idempotent: a second caller matches zero rows and must not
// restock again.
func (repo *orderRepository) MarkCancelled(ctx context.Context, id uuid.UUID, paymentStatus *entity.PaymentStatus) (bool, error) {
	updates := map[string]any{"status": string(entity.OrderStatusCancelled)}
	if paymentStatus != nil {
		updates["payment_status"] = string(*paymentStatus)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status NOT IN ?", id,
			[]string{string(entity.OrderStatusCancelled), string(entity.OrderStatusPaid)}).
		Updates(updates)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark order cancelled")
	}

	return result.RowsAffected == 1, nil
}

// MarkPaid conditionally sets status PAID and payment status AUTHORIZED. The
// PENDING guard keeps a settled order settled: an order the sweeper cancelled
// while its payment was in flight must not come back as PAID.
func (repo *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
		Updates(map[string]any{
			"status":         string(entity.OrderStatusPaid),
			"payment_status": string(entity.PaymentStatusAuthorized),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected == 1, nil
}

// SetWebpayToken stores the gateway token and sets payment status PENDING.
func (repo *orderRepository) SetWebpayToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"webpay_token":   token,
			"payment_status": string(entity.PaymentStatusPending),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set webpay token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// SetPaymentStatus updates only the payment status column.
func (repo *orderRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		CustomerEmail: data.CustomerEmail,
		Total:         data.Total,
		Status:        entity.OrderStatus(data.Status),
		WebpayToken:   data.WebpayToken,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.PaymentStatus != nil {
		paymentStatus := entity.PaymentStatus(*data.PaymentStatus)
		order.PaymentStatus = &paymentStatus
	}
	if len(data.ShippingAddress) > 0 {
		var address map[string]any
		if err := json.Unmarshal(data.ShippingAddress, &address); err == nil {
			order.ShippingAddress = address
		}
	}

	order.Items = make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		item := entity.OrderItem{
			ID:            itemM.ID,
			OrderID:       itemM.OrderID,
			ProductID:     itemM.ProductID,
			Qty:           itemM.Qty,
			PriceSnapshot: itemM.PriceSnapshot,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		order.Items = append(order.Items, item)
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		CustomerEmail: data.CustomerEmail,
		Total:         data.Total,
		Status:        string(data.Status),
		WebpayToken:   data.WebpayToken,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.PaymentStatus != nil {
		paymentStatus := string(*data.PaymentStatus)
		orderM.PaymentStatus = &paymentStatus
	}
	if data.ShippingAddress != nil {
		if raw, err := json.Marshal(data.ShippingAddress); err == nil {
			orderM.ShippingAddress = datatypes.JSON(raw)
		}
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:            item.ID,
			OrderID:       item.OrderID,
			ProductID:     item.ProductID,
			Qty:           item.Qty,
			PriceSnapshot: item.PriceSnapshot,
		})
	}

	return orderM
}

func toOrderDomainSlice(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
