package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Prices are integer Chilean pesos.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       int       `gorm:"not null"`
	Image       string    `gorm:"type:text"`
	Images      datatypes.JSON
	Stock       int        `gorm:"not null;default:0;check:stock >= 0"`
	IsActive    bool       `gorm:"not null;default:true;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Brand       *string    `gorm:"type:varchar(100);index"`
	SKU         *string    `gorm:"column:sku;type:varchar(100);unique"`
	Weight      *float64
	Tags        datatypes.JSON
	Views       int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
