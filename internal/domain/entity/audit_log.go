package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of an administrative action.
type AuditLog struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID // Acting user, nil for system actions.
	Actor     *User
	Action    string // e.g. "PRODUCT_CREATE", "ORDER_STATUS_UPDATE".
	Entity    string // Affected entity kind, e.g. "Product".
	EntityID  string
	Meta      map[string]any
	CreatedAt time.Time
}
