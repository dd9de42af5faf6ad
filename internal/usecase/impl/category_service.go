package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	auditRepo    repository.AuditLogRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	AuditRepo    repository.AuditLogRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		auditRepo:    params.AuditRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all categories with product counts.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a category.
func (srv *categoryService) CreateCategory(ctx context.Context, actorID uuid.UUID, input *usecase.SaveCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name: input.Name,
		Slug: input.Slug,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryConflict) {
			return nil, errors.Wrap(domainerrors.ErrCategoryConflict, "create category")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "CATEGORY_CREATE", "Category", category.ID.String(),
		map[string]any{"name": category.Name})

	return category, nil
}

// UpdateCategory renames a category or changes its slug.
func (srv *categoryService) UpdateCategory(ctx context.Context, actorID, id uuid.UUID, input *usecase.SaveCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:   id,
		Name: input.Name,
		Slug: input.Slug,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "update category")
		case errors.Is(err, repository.ErrCategoryConflict):
			return nil, errors.Wrap(domainerrors.ErrCategoryConflict, "update category")
		default:
			return nil, errors.Wrap(err, "failed to update category")
		}
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "CATEGORY_UPDATE", "Category", id.String(),
		map[string]any{"name": category.Name})

	return category, nil
}

// DeleteCategory removes a category without products.
func (srv *categoryService) DeleteCategory(ctx context.Context, actorID, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "delete category")
		case errors.Is(err, repository.ErrCategoryInUse):
			return errors.Wrap(domainerrors.ErrCategoryInUse, "delete category")
		default:
			return errors.Wrap(err, "failed to delete category")
		}
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "CATEGORY_DELETE", "Category", id.String(), nil)

	return nil
}
