package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryConflict is returned when a category name or slug already exists.
	ErrCategoryConflict = errors.New("category name or slug already exists")
	// ErrCategoryInUse is returned when deleting a category that products reference.
	ErrCategoryInUse = errors.New("category has associated products")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// List retrieves all categories ordered by name, with product counts.
	List(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Returns ErrCategoryInUse when products
	// still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
