package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderOtpModel mirrors the 'order_otps' table. Only the HMAC of a code is
// stored, never the code itself.
type OrderOtpModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_order_otps_order_email"`
	Email      string    `gorm:"type:varchar(255);not null;index:idx_order_otps_order_email"`
	CodeHash   string    `gorm:"type:varchar(64);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Attempts   int       `gorm:"not null;default:0"`
	ConsumedAt *time.Time
	LastSentAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderOtpModel) TableName() string {
	return "order_otps"
}
