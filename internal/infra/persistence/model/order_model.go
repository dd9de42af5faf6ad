package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. user_id is NULL for guest checkouts.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	CustomerEmail   string     `gorm:"type:varchar(255);not null;index"`
	Total           int        `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:PENDING;index"`
	PaymentStatus   *string    `gorm:"type:varchar(30)"`
	WebpayToken     *string    `gorm:"type:varchar(255);unique"`
	ShippingAddress datatypes.JSON
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	User  *UserModel       `gorm:"foreignKey:UserID"`
	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. price_snapshot freezes the
// unit price at purchase time.
type OrderItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Qty           int       `gorm:"not null;check:qty > 0"`
	PriceSnapshot int       `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
