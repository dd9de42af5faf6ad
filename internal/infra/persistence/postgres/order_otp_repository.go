package postgres

import (
	"context"
	"time"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderOtpRepository implements the repository.OrderOtpRepository interface.
type orderOtpRepository struct {
	db *gorm.DB
}

// NewOrderOtpRepository is the constructor for orderOtpRepository.
func NewOrderOtpRepository(db *gorm.DB) repository.OrderOtpRepository {
	return &orderOtpRepository{
		db: db,
	}
}

// Create persists a freshly issued OTP.
func (repo *orderOtpRepository) Create(ctx context.Context, otp *entity.OrderOtp) error {
	otpM := fromOrderOtpDomain(otp)

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// FindLatestActive retrieves the most recently sent unconsumed OTP for the
// order and email.
func (repo *orderOtpRepository) FindLatestActive(ctx context.Context, orderID uuid.UUID, email string) (*entity.OrderOtp, error) {
	var otpM model.OrderOtpModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND email = ? AND consumed_at IS NULL", orderID, email).
		Order("last_sent_at DESC").
		First(&otpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.Wrap(err, "failed to find active otp")
	}

	return toOrderOtpDomain(&otpM), nil
}

// IncrementAttempts bumps the failed attempt counter.
func (repo *orderOtpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderOtpModel{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment otp attempts")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOtpNotFound
	}

	return nil
}

// Consume stamps the OTP as used. The consumed_at IS NULL guard makes the
// code single-use even under concurrent verification calls.
func (repo *orderOtpRepository) Consume(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderOtpModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume otp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOtpNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderOtpDomain converts a GORM OrderOtpModel to a domain OrderOtp entity.
func toOrderOtpDomain(data *model.OrderOtpModel) *entity.OrderOtp {
	if data == nil {
		return nil
	}

	return &entity.OrderOtp{
		ID:         data.ID,
		OrderID:    data.OrderID,
		Email:      data.Email,
		CodeHash:   data.CodeHash,
		ExpiresAt:  data.ExpiresAt,
		Attempts:   data.Attempts,
		ConsumedAt: data.ConsumedAt,
		LastSentAt: data.LastSentAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromOrderOtpDomain converts a domain OrderOtp entity to a GORM OrderOtpModel.
func fromOrderOtpDomain(data *entity.OrderOtp) *model.OrderOtpModel {
	if data == nil {
		return nil
	}

	return &model.OrderOtpModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		Email:      data.Email,
		CodeHash:   data.CodeHash,
		ExpiresAt:  data.ExpiresAt,
		Attempts:   data.Attempts,
		ConsumedAt: data.ConsumedAt,
		LastSentAt: data.LastSentAt,
		CreatedAt:  data.CreatedAt,
	}
}
