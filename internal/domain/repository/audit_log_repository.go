package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
)

// AuditLogRepository defines the interface for the append-only audit trail.
type AuditLogRepository interface {
	// Append records an administrative action. Audit writes are best-effort
	// and never abort the action they describe.
	Append(ctx context.Context, log *entity.AuditLog) error

	// ListRecent retrieves the newest entries with their actors, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
