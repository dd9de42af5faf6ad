package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel mirrors the append-only 'audit_logs' table.
type AuditLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(100);not null"`
	Entity    string     `gorm:"type:varchar(100);not null"`
	EntityID  string     `gorm:"type:varchar(100)"`
	Meta      datatypes.JSON
	CreatedAt time.Time `gorm:"index"`

	Actor *UserModel `gorm:"foreignKey:ActorID"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
