package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaAssetModel mirrors the 'media_assets' table. The (type, section) pair
// is unique so uploads replace assets in place.
type MediaAssetModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type           string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_media_assets_type_section"`
	Section        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_media_assets_type_section"`
	Title          *string   `gorm:"type:varchar(255)"`
	URL            string    `gorm:"type:text;not null"`
	DisplayOrder   int       `gorm:"not null;default:0"`
	ObjectFit      string    `gorm:"type:varchar(20)"`
	ObjectPosition string    `gorm:"type:varchar(50)"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaAssetModel) TableName() string {
	return "media_assets"
}
