// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"

	"github.com/google/uuid"
)

// recordAudit appends an audit entry. Audit writes are best-effort: a failed
// write is logged and never aborts the action it describes.
func recordAudit(
	ctx context.Context,
	logger *slog.Logger,
	auditRepo repository.AuditLogRepository,
	actorID uuid.UUID,
	action, entityKind, entityID string,
	meta map[string]any,
) {
	log := &entity.AuditLog{
		Action:   action,
		Entity:   entityKind,
		EntityID: entityID,
		Meta:     meta,
	}
	if actorID != uuid.Nil {
		log.ActorID = &actorID
	}

	if err := auditRepo.Append(ctx, log); err != nil {
		logger.Warn("Failed to append audit log",
			slog.String("action", action),
			slog.String("entity", entityKind),
			slog.Any("error", err))
	}
}
