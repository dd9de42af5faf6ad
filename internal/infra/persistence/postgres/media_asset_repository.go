package postgres

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mediaAssetRepository implements the repository.MediaAssetRepository interface.
type mediaAssetRepository struct {
	db *gorm.DB
}

// NewMediaAssetRepository is the constructor for mediaAssetRepository.
func NewMediaAssetRepository(db *gorm.DB) repository.MediaAssetRepository {
	return &mediaAssetRepository{
		db: db,
	}
}

// List retrieves all assets ordered by type, display order and recency.
func (repo *mediaAssetRepository) List(ctx context.Context) ([]*entity.MediaAsset, error) {
	var assetModels []*model.MediaAssetModel

	if err := repo.db.WithContext(ctx).
		Order("type ASC, display_order ASC, created_at DESC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list media assets")
	}

	return toMediaAssetDomainSlice(assetModels), nil
}

// ListByType retrieves active assets of one type in display order.
func (repo *mediaAssetRepository) ListByType(ctx context.Context, assetType entity.MediaAssetType) ([]*entity.MediaAsset, error) {
	var assetModels []*model.MediaAssetModel

	if err := repo.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", string(assetType), true).
		Order("display_order ASC, created_at DESC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list media assets by type")
	}

	return toMediaAssetDomainSlice(assetModels), nil
}

// FindByID retrieves an asset by ID.
func (repo *mediaAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error) {
	var assetM model.MediaAssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find media asset by id")
	}

	return toMediaAssetDomain(&assetM), nil
}

// FindBySection retrieves the active asset for a section.
func (repo *mediaAssetRepository) FindBySection(ctx context.Context, section string) (*entity.MediaAsset, error) {
	var assetM model.MediaAssetModel

	if err := repo.db.WithContext(ctx).
		Where("section = ? AND is_active = ?", section, true).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find media asset by section")
	}

	return toMediaAssetDomain(&assetM), nil
}

// FindByTypeAndSection retrieves the asset for the unique (type, section) pair.
func (repo *mediaAssetRepository) FindByTypeAndSection(ctx context.Context, assetType entity.MediaAssetType, section string) (*entity.MediaAsset, error) {
	var assetM model.MediaAssetModel

	if err := repo.db.WithContext(ctx).
		Where("type = ? AND section = ?", string(assetType), section).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find media asset by type and section")
	}

	return toMediaAssetDomain(&assetM), nil
}

// Create persists a new asset.
func (repo *mediaAssetRepository) Create(ctx context.Context, asset *entity.MediaAsset) error {
	assetM := fromMediaAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("section already holds an asset of this type")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt
	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// Update modifies an existing asset.
func (repo *mediaAssetRepository) Update(ctx context.Context, asset *entity.MediaAsset) error {
	assetM := fromMediaAssetDomain(asset)

	result := repo.db.WithContext(ctx).
		Model(&model.MediaAssetModel{}).
		Where("id = ?", asset.ID).
		Select("Type", "Section", "Title", "URL", "DisplayOrder",
			"ObjectFit", "ObjectPosition", "IsActive").
		Updates(assetM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("section already holds an asset of this type")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update media asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMediaAssetNotFound
	}

	return nil
}

// Delete removes an asset.
func (repo *mediaAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MediaAssetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete media asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMediaAssetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMediaAssetDomain converts a GORM MediaAssetModel to a domain MediaAsset entity.
func toMediaAssetDomain(data *model.MediaAssetModel) *entity.MediaAsset {
	if data == nil {
		return nil
	}

	return &entity.MediaAsset{
		ID:             data.ID,
		Type:           entity.MediaAssetType(data.Type),
		Section:        data.Section,
		Title:          data.Title,
		URL:            data.URL,
		DisplayOrder:   data.DisplayOrder,
		ObjectFit:      data.ObjectFit,
		ObjectPosition: data.ObjectPosition,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromMediaAssetDomain converts a domain MediaAsset entity to a GORM MediaAssetModel.
func fromMediaAssetDomain(data *entity.MediaAsset) *model.MediaAssetModel {
	if data == nil {
		return nil
	}

	return &model.MediaAssetModel{
		ID:             data.ID,
		Type:           string(data.Type),
		Section:        data.Section,
		Title:          data.Title,
		URL:            data.URL,
		DisplayOrder:   data.DisplayOrder,
		ObjectFit:      data.ObjectFit,
		ObjectPosition: data.ObjectPosition,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toMediaAssetDomainSlice(assetModels []*model.MediaAssetModel) []*entity.MediaAsset {
	assets := make([]*entity.MediaAsset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toMediaAssetDomain(assetM))
	}

	return assets
}
