package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMediaAssetNotFound is returned when a media asset is not found.
var ErrMediaAssetNotFound = errors.New("media asset not found")

// MediaAssetRepository defines the interface for storefront media persistence.
type MediaAssetRepository interface {
	// List retrieves all assets ordered by type, display order and recency.
	List(ctx context.Context) ([]*entity.MediaAsset, error)

	// ListByType retrieves active assets of one type in display order.
	ListByType(ctx context.Context, assetType entity.MediaAssetType) ([]*entity.MediaAsset, error)

	// FindByID retrieves an asset by ID, or ErrMediaAssetNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error)

	// FindBySection retrieves the active asset for a section, or ErrMediaAssetNotFound.
	FindBySection(ctx context.Context, section string) (*entity.MediaAsset, error)

	// FindByTypeAndSection retrieves the asset for the unique (type, section)
	// pair regardless of active flag, or ErrMediaAssetNotFound.
	FindByTypeAndSection(ctx context.Context, assetType entity.MediaAssetType, section string) (*entity.MediaAsset, error)

	// Create persists a new asset.
	Create(ctx context.Context, asset *entity.MediaAsset) error

	// Update modifies an existing asset.
	Update(ctx context.Context, asset *entity.MediaAsset) error

	// Delete removes an asset.
	Delete(ctx context.Context, id uuid.UUID) error
}
