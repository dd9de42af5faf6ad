package postgres

import (
	"context"
	"encoding/json"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID, with its category.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves products matching the given IDs.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, activeOnly bool) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := repo.db.WithContext(ctx).Where("id IN ?", ids)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// List retrieves a filtered, sorted page of products plus the total count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.Tag != "" {
		// Tags is a JSON array of strings.
		query = query.Where("tags @> ?", datatypes.JSON(mustJSONStrings([]string{filter.Tag})))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	query = query.Order(productOrderClause(filter.Sort))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var productModels []*model.ProductModel
	if err := query.Preload("Category").Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// ListBrands retrieves the distinct non-empty brands of active products.
func (repo *productRepository) ListBrands(ctx context.Context, categoryID *uuid.UUID, tag string) ([]string, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_active = ? AND brand IS NOT NULL AND brand <> ''", true)

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if tag != "" {
		query = query.Where("tags @> ?", datatypes.JSON(mustJSONStrings([]string{tag})))
	}

	var brands []string
	if err := query.Distinct("brand").Order("brand ASC").Pluck("brand", &brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("duplicate product sku")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("Name", "Description", "Price", "Image", "Images", "Stock",
			"IsActive", "CategoryID", "Brand", "SKU", "Weight", "Tags").
		Updates(productM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("duplicate product sku")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically reserves qty units of an active product.
// The guard (stock >= qty AND is_active) makes overselling impossible even
// under concurrent checkouts; a zero row count means the reservation failed.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ? AND is_active = ?", id, qty, true).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock adds qty back to a product's stock.
func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementViews bumps the storefront view counter.
func (repo *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment views")
	}

	return nil
}

// Delete removes a product unless order items still reference it.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrProductReferenced
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Images:      fromJSONStrings(data.Images),
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		CategoryID:  data.CategoryID,
		Brand:       data.Brand,
		SKU:         data.SKU,
		Weight:      data.Weight,
		Tags:        fromJSONStrings(data.Tags),
		Views:       data.Views,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Images:      datatypes.JSON(mustJSONStrings(data.Images)),
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		CategoryID:  data.CategoryID,
		Brand:       data.Brand,
		SKU:         data.SKU,
		Weight:      data.Weight,
		Tags:        datatypes.JSON(mustJSONStrings(data.Tags)),
		Views:       data.Views,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func productOrderClause(sort repository.ProductSort) string {
	switch sort {
	case repository.ProductSortDateAsc:
		return "created_at ASC"
	case repository.ProductSortPriceAsc:
		return "price ASC"
	case repository.ProductSortPriceDesc:
		return "price DESC"
	case repository.ProductSortAlphaAsc:
		return "name ASC"
	case repository.ProductSortAlphaDesc:
		return "name DESC"
	default:
		return "created_at DESC"
	}
}

func mustJSONStrings(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	// Marshalling a string slice cannot fail.
	raw, _ := json.Marshal(values)

	return raw
}

func fromJSONStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	return values
}
