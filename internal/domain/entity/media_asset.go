package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaAssetType classifies where an asset is rendered on the storefront.
type MediaAssetType string

const (
	MediaAssetTypeBanner   MediaAssetType = "BANNER"
	MediaAssetTypeCategory MediaAssetType = "CATEGORY"
	MediaAssetTypeLogo     MediaAssetType = "LOGO"
)

// IsValid checks if the MediaAssetType is a valid value.
func (t MediaAssetType) IsValid() bool {
	switch t {
	case MediaAssetTypeBanner, MediaAssetTypeCategory, MediaAssetTypeLogo:
		return true
	default:
		return false
	}
}

// MediaAsset is a managed storefront image. The (Type, Section) pair is
// unique; uploading to an existing pair replaces the asset in place.
type MediaAsset struct {
	ID             uuid.UUID
	Type           MediaAssetType
	Section        string // Placement key, e.g. "home-hero", "category-audio".
	Title          *string
	URL            string // Public object storage URL.
	DisplayOrder   int
	ObjectFit      string // CSS object-fit hint for the storefront.
	ObjectPosition string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
