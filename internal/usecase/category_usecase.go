package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveCategoryInput carries the writable fields of a category.
type SaveCategoryInput struct {
	Name string
	Slug string
}

// CategoryUsecase defines the interface for category operations.
type CategoryUsecase interface {
	// ListCategories retrieves all categories with product counts.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a category.
	CreateCategory(ctx context.Context, actorID uuid.UUID, input *SaveCategoryInput) (*entity.Category, error)

	// UpdateCategory renames a category or changes its slug.
	UpdateCategory(ctx context.Context, actorID, id uuid.UUID, input *SaveCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category without products.
	DeleteCategory(ctx context.Context, actorID, id uuid.UUID) error
}
