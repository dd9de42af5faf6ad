package usecase

import (
	"context"
	"io"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadMediaInput carries a storefront image upload. Uploading to an
// existing (Type, Section) pair replaces the asset in place.
type UploadMediaInput struct {
	Type           entity.MediaAssetType
	Section        string
	Title          *string
	DisplayOrder   int
	ObjectFit      string
	ObjectPosition string
	FileName       string
	ContentType    string
	Body           io.Reader
}

// UpdateMediaInput carries the editable metadata of an asset.
// Nil fields are left unchanged.
type UpdateMediaInput struct {
	Title          *string
	DisplayOrder   *int
	ObjectFit      *string
	ObjectPosition *string
	IsActive       *bool
}

// MediaUsecase defines the interface for managed storefront imagery.
type MediaUsecase interface {
	// ListAssets retrieves every asset for the management view.
	ListAssets(ctx context.Context) ([]*entity.MediaAsset, error)

	// ListActiveByType retrieves the active assets the storefront renders.
	ListActiveByType(ctx context.Context, assetType entity.MediaAssetType) ([]*entity.MediaAsset, error)

	// GetActiveBySection retrieves the active asset for one storefront section.
	GetActiveBySection(ctx context.Context, section string) (*entity.MediaAsset, error)

	// UploadAsset stores the image and creates or replaces the asset record.
	UploadAsset(ctx context.Context, actorID uuid.UUID, input *UploadMediaInput) (*entity.MediaAsset, error)

	// UpdateAsset modifies asset metadata.
	UpdateAsset(ctx context.Context, actorID, id uuid.UUID, input *UpdateMediaInput) (*entity.MediaAsset, error)

	// DeleteAsset removes an asset record.
	DeleteAsset(ctx context.Context, actorID, id uuid.UUID) error
}
