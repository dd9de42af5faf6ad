package postgres

import (
	"context"
	"encoding/json"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Append records an administrative action.
func (repo *auditLogRepository) Append(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to append audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListRecent retrieves the newest entries with their actors, capped at limit.
func (repo *auditLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	var logModels []*model.AuditLogModel

	if err := repo.db.WithContext(ctx).
		Preload("Actor").
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toAuditLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLog entity.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLog {
	if data == nil {
		return nil
	}

	log := &entity.AuditLog{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Entity:    data.Entity,
		EntityID:  data.EntityID,
		CreatedAt: data.CreatedAt,
	}
	if data.Actor != nil {
		log.Actor = toUserDomain(data.Actor)
	}
	if len(data.Meta) > 0 {
		var meta map[string]any
		if err := json.Unmarshal(data.Meta, &meta); err == nil {
			log.Meta = meta
		}
	}

	return log
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	logM := &model.AuditLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Entity:    data.Entity,
		EntityID:  data.EntityID,
		CreatedAt: data.CreatedAt,
	}
	if data.Meta != nil {
		if raw, err := json.Marshal(data.Meta); err == nil {
			logM.Meta = datatypes.JSON(raw)
		}
	}

	return logM
}
