package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListProductsInput narrows and pages the catalog listing.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Tag        string
	Brand      string
	Query      string
	MinPrice   *int
	MaxPrice   *int
	Sort       repository.ProductSort
	Page       int
	Limit      int

	// IncludeInactive is honored for ADMIN and WORKER callers only.
	IncludeInactive bool
}

// SaveProductInput carries the writable fields of a product.
type SaveProductInput struct {
	Name        string
	Description string
	Price       int
	Image       string
	Images      []string
	Stock       int
	IsActive    bool
	CategoryID  *uuid.UUID
	Brand       *string
	SKU         *string
	Weight      *float64
	Tags        []string
}

// --- Output DTOs ---

// ProductListOutput is one page of catalog results.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
	Page     int
	Limit    int
}

// ProductUsecase defines the interface for catalog product operations.
type ProductUsecase interface {
	// ListProducts retrieves a filtered page of the catalog.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// GetProduct retrieves one product and bumps its view counter when
	// countView is set.
	GetProduct(ctx context.Context, id uuid.UUID, countView bool) (*entity.Product, error)

	// ListBrands retrieves the distinct brands for the storefront filter bar.
	ListBrands(ctx context.Context, categoryID *uuid.UUID, tag string) ([]string, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, actorID uuid.UUID, input *SaveProductInput) (*entity.Product, error)

	// UpdateProduct rewrites a product's fields.
	UpdateProduct(ctx context.Context, actorID, id uuid.UUID, input *SaveProductInput) (*entity.Product, error)

	// DisableProduct hides a product from the storefront without touching
	// its data. The escape hatch for products with sales history.
	DisableProduct(ctx context.Context, actorID, id uuid.UUID) (*entity.Product, error)

	// DeleteProduct removes a product without sales history.
	DeleteProduct(ctx context.Context, actorID, id uuid.UUID) error
}
