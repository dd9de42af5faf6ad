// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// matched no row, i.e. the product is inactive or stock < qty.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrProductReferenced is returned when deleting a product that order
	// items still reference.
	ErrProductReferenced = errors.New("product referenced by order items")
)

// ProductSort enumerates supported catalog orderings.
type ProductSort string

const (
	ProductSortDateDesc  ProductSort = "date-desc"
	ProductSortDateAsc   ProductSort = "date-asc"
	ProductSortPriceAsc  ProductSort = "price-asc"
	ProductSortPriceDesc ProductSort = "price-desc"
	ProductSortAlphaAsc  ProductSort = "alpha-asc"
	ProductSortAlphaDesc ProductSort = "alpha-desc"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID *uuid.UUID
	Tag        string
	Brand      string
	Query      string // Matches name, description or brand, case-insensitive.
	MinPrice   *int
	MaxPrice   *int
	// ActiveOnly restricts results to storefront-visible products.
	ActiveOnly bool
	Sort       ProductSort
	Page       int
	Limit      int
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves products matching the given IDs. Missing IDs are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID, activeOnly bool) ([]*entity.Product, error)

	// List retrieves a filtered, sorted page of products plus the total count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// ListBrands retrieves the distinct non-empty brands of active products,
	// optionally narrowed by category or tag.
	ListBrands(ctx context.Context, categoryID *uuid.UUID, tag string) ([]string, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DecrementStock atomically decrements stock by qty for an active product
	// with stock >= qty. Returns ErrInsufficientStock when no row matched.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// IncrementStock adds qty back to a product's stock.
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// IncrementViews bumps the storefront view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// Delete removes a product. Returns ErrProductReferenced when order items
	// still point at it.
	Delete(ctx context.Context, id uuid.UUID) error
}
