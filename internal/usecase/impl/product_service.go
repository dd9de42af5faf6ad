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

const defaultPageLimit = 20

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	auditRepo   repository.AuditLogRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	AuditRepo   repository.AuditLogRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		auditRepo:   params.AuditRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves a filtered page of the catalog.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		Tag:        input.Tag,
		Brand:      input.Brand,
		Query:      input.Query,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		ActiveOnly: !input.IncludeInactive,
		Sort:       input.Sort,
		Page:       page,
		Limit:      limit,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products: products,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// GetProduct retrieves one product and optionally bumps its view counter.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID, countView bool) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if countView {
		// The counter is informational; a failed bump must not hide the product.
		if err := srv.productRepo.IncrementViews(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to increment product views", slog.Any("productID", id), slog.Any("error", err))
		} else {
			product.Views++
		}
	}

	return product, nil
}

// ListBrands retrieves the distinct brands for the storefront filter bar.
func (srv *productService) ListBrands(ctx context.Context, categoryID *uuid.UUID, tag string) ([]string, error) {
	brands, err := srv.productRepo.ListBrands(ctx, categoryID, tag)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// CreateProduct adds a product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, actorID uuid.UUID, input *usecase.SaveProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("actorID", actorID))
	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "PRODUCT_CREATE", "Product", product.ID.String(),
		map[string]any{"name": product.Name, "price": product.Price})

	return product, nil
}

// UpdateProduct rewrites a product's fields.
func (srv *productService) UpdateProduct(ctx context.Context, actorID, id uuid.UUID, input *usecase.SaveProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	updated, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated product")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "PRODUCT_UPDATE", "Product", id.String(),
		map[string]any{"name": updated.Name})

	return updated, nil
}

// DisableProduct hides a product from the storefront without touching its data.
func (srv *productService) DisableProduct(ctx context.Context, actorID, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "disable product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		return product, nil
	}

	product.IsActive = false
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to disable product")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "PRODUCT_DISABLE", "Product", id.String(),
		map[string]any{"name": product.Name})

	return product, nil
}

// DeleteProduct removes a product without sales history.
func (srv *productService) DeleteProduct(ctx context.Context, actorID, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete product")
		case errors.Is(err, repository.ErrProductReferenced):
			// Sold products stay for order history; deactivation is the way out.
			return errors.Wrap(domainerrors.ErrProductHasSalesHistory, "delete product")
		default:
			return errors.Wrap(err, "failed to delete product")
		}
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id), slog.Any("actorID", actorID))
	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "PRODUCT_DELETE", "Product", id.String(), nil)

	return nil
}

func productFromInput(input *usecase.SaveProductInput) *entity.Product {
	return &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Images:      input.Images,
		Stock:       input.Stock,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
		Brand:       input.Brand,
		SKU:         input.SKU,
		Weight:      input.Weight,
		Tags:        input.Tags,
	}
}
