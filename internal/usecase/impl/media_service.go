package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	mediaRepo repository.MediaAssetRepository
	auditRepo repository.AuditLogRepository
	storage   service.MediaStorage
	logger    *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	MediaRepo repository.MediaAssetRepository
	AuditRepo repository.AuditLogRepository
	Storage   service.MediaStorage
	Logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		mediaRepo: params.MediaRepo,
		auditRepo: params.AuditRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAssets retrieves every asset for the management view.
func (srv *mediaService) ListAssets(ctx context.Context) ([]*entity.MediaAsset, error) {
	assets, err := srv.mediaRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media assets")
	}

	return assets, nil
}

// ListActiveByType retrieves the active assets the storefront renders.
func (srv *mediaService) ListActiveByType(ctx context.Context, assetType entity.MediaAssetType) ([]*entity.MediaAsset, error) {
	if !assetType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid media type")
	}

	assets, err := srv.mediaRepo.ListByType(ctx, assetType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media assets by type")
	}

	return assets, nil
}

// GetActiveBySection retrieves the active asset for one storefront section.
func (srv *mediaService) GetActiveBySection(ctx context.Context, section string) (*entity.MediaAsset, error) {
	if strings.TrimSpace(section) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "section is required")
	}

	asset, err := srv.mediaRepo.FindBySection(ctx, section)
	if err != nil {
		if errors.Is(err, repository.ErrMediaAssetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMediaAssetNotFound, "get asset by section")
		}

		return nil, errors.Wrap(err, "failed to find media asset by section")
	}

	return asset, nil
}

// UploadAsset stores the image and creates or replaces the asset record for
// the (type, section) pair.
func (srv *mediaService) UploadAsset(ctx context.Context, actorID uuid.UUID, input *usecase.UploadMediaInput) (*entity.MediaAsset, error) {
	if !input.Type.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid media type")
	}
	if strings.TrimSpace(input.Section) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "section is required")
	}

	url, err := srv.storage.Upload(ctx, objectKeyFor(input), input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Media upload failed",
			slog.String("section", input.Section),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, "upload asset")
	}

	existing, err := srv.mediaRepo.FindByTypeAndSection(ctx, input.Type, input.Section)
	if err != nil && !errors.Is(err, repository.ErrMediaAssetNotFound) {
		return nil, errors.Wrap(err, "failed to look up media asset")
	}

	if existing != nil {
		existing.Title = input.Title
		existing.URL = url
		existing.DisplayOrder = input.DisplayOrder
		existing.ObjectFit = input.ObjectFit
		existing.ObjectPosition = input.ObjectPosition
		existing.IsActive = true

		if err := srv.mediaRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to replace media asset")
		}

		recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "MEDIA_REPLACE", "MediaAsset", existing.ID.String(),
			map[string]any{"section": input.Section})

		return existing, nil
	}

	asset := &entity.MediaAsset{
		Type:           input.Type,
		Section:        input.Section,
		Title:          input.Title,
		URL:            url,
		DisplayOrder:   input.DisplayOrder,
		ObjectFit:      input.ObjectFit,
		ObjectPosition: input.ObjectPosition,
		IsActive:       true,
	}

	if err := srv.mediaRepo.Create(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to create media asset")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "MEDIA_UPLOAD", "MediaAsset", asset.ID.String(),
		map[string]any{"section": input.Section})

	return asset, nil
}

// UpdateAsset modifies asset metadata. Nil input fields are left unchanged.
func (srv *mediaService) UpdateAsset(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateMediaInput) (*entity.MediaAsset, error) {
	asset, err := srv.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaAssetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMediaAssetNotFound, "update asset")
		}

		return nil, errors.Wrap(err, "failed to find media asset")
	}

	if input.Title != nil {
		asset.Title = input.Title
	}
	if input.DisplayOrder != nil {
		asset.DisplayOrder = *input.DisplayOrder
	}
	if input.ObjectFit != nil {
		asset.ObjectFit = *input.ObjectFit
	}
	if input.ObjectPosition != nil {
		asset.ObjectPosition = *input.ObjectPosition
	}
	if input.IsActive != nil {
		asset.IsActive = *input.IsActive
	}

	if err := srv.mediaRepo.Update(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to update media asset")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "MEDIA_UPDATE", "MediaAsset", id.String(), nil)

	return asset, nil
}

// DeleteAsset removes an asset record. The stored object is kept so cached
// storefront pages do not break mid-session.
func (srv *mediaService) DeleteAsset(ctx context.Context, actorID, id uuid.UUID) error {
	if err := srv.mediaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMediaAssetNotFound) {
			return errors.Wrap(domainerrors.ErrMediaAssetNotFound, "delete asset")
		}

		return errors.Wrap(err, "failed to delete media asset")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "MEDIA_DELETE", "MediaAsset", id.String(), nil)

	return nil
}

// objectKeyFor builds a collision-free object key that still reads well in
// bucket listings, e.g. "media/banner/home-hero/5f3a...-hero.webp".
func objectKeyFor(input *usecase.UploadMediaInput) string {
	fileName := path.Base(input.FileName)
	if fileName == "." || fileName == "/" || fileName == "" {
		fileName = "asset"
	}

	return path.Join(
		"media",
		strings.ToLower(string(input.Type)),
		input.Section,
		uuid.New().String()[:8]+"-"+fileName,
	)
}
