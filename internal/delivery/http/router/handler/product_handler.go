package handler

import (
	"net/http"
	"strconv"

	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List handles the public catalog listing with filters and paging.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Tag:   c.QueryParam("tag"),
		Brand: c.QueryParam("brand"),
		Query: c.QueryParam("q"),
		Sort:  repository.ProductSort(c.QueryParam("sort")),
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "categoryId inválido")
		}
		input.CategoryID = &categoryID
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "minPrice inválido")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "maxPrice inválido")
		}
		input.MaxPrice = &maxPrice
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	// Inactive products are visible to staff only.
	if user, ok := middleware.CurrentUser(c); ok {
		input.IncludeInactive = user.Role == entity.RoleAdmin || user.Role == entity.RoleWorker
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": output.Products,
		"total":    output.Total,
		"page":     output.Page,
		"limit":    output.Limit,
	}, "")
}

// Get handles a single product fetch. Storefront views bump the counter;
// staff previews pass countView=false.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de producto inválido")
	}

	countView := c.QueryParam("countView") != "false"

	product, err := h.uc.GetProduct(c.Request().Context(), id, countView)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CountView handles an explicit storefront view ping for a product.
func (h *ProductHandler) CountView(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de producto inválido")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id, true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"views": product.Views}, "")
}

// Brands handles the distinct brand listing for the filter bar.
func (h *ProductHandler) Brands(c echo.Context) error {
	var categoryID *uuid.UUID
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "categoryId inválido")
		}
		categoryID = &id
	}

	brands, err := h.uc.ListBrands(c.Request().Context(), categoryID, c.QueryParam("tag"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "")
}

type saveProductRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Price       int        `json:"price" validate:"required,gt=0"`
	Image       string     `json:"image"`
	Images      []string   `json:"images"`
	Stock       int        `json:"stock" validate:"gte=0"`
	IsActive    bool       `json:"isActive"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Brand       *string    `json:"brand"`
	SKU         *string    `json:"sku"`
	Weight      *float64   `json:"weight"`
	Tags        []string   `json:"tags"`
}

func (r *saveProductRequest) toInput() *usecase.SaveProductInput {
	return &usecase.SaveProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Images:      r.Images,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
		CategoryID:  r.CategoryID,
		Brand:       r.Brand,
		SKU:         r.SKU,
		Weight:      r.Weight,
		Tags:        r.Tags,
	}
}

// Create handles the staff product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	var req saveProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de producto inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Producto creado")
}

// Update handles the staff product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de producto inválido")
	}

	var req saveProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de producto inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), user.ID, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto actualizado")
}

// Disable handles hiding a product from the storefront. Products with sales
// history cannot be deleted, so this is how staff retire them.
func (h *ProductHandler) Disable(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de producto inválido")
	}

	product, err := h.uc.DisableProduct(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto desactivado")
}

// Delete handles the staff product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de producto inválido")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Producto eliminado")
}
