package handler

import (
	"net/http"
	"strconv"

	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for storefront imagery handlers.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// ListByType handles the public storefront asset listing for one type.
func (h *MediaHandler) ListByType(c echo.Context) error {
	assetType := entity.MediaAssetType(c.Param("type"))
	if !assetType.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Tipo de recurso inválido")
	}

	assets, err := h.uc.ListActiveByType(c.Request().Context(), assetType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assets, "")
}

// GetBySection handles the public lookup of the asset behind one storefront
// section.
func (h *MediaHandler) GetBySection(c echo.Context) error {
	asset, err := h.uc.GetActiveBySection(c.Request().Context(), c.Param("section"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "")
}

// List handles the staff management listing of every asset.
func (h *MediaHandler) List(c echo.Context) error {
	assets, err := h.uc.ListAssets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assets, "")
}

// Upload handles a multipart image upload. Uploading to an existing
// (type, section) pair replaces the asset in place.
func (h *MediaHandler) Upload(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Se requiere el archivo de imagen")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	input := &usecase.UploadMediaInput{
		Type:           entity.MediaAssetType(c.FormValue("type")),
		Section:        c.FormValue("section"),
		ObjectFit:      c.FormValue("objectFit"),
		ObjectPosition: c.FormValue("objectPosition"),
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Body:           file,
	}
	if title := c.FormValue("title"); title != "" {
		input.Title = &title
	}
	if raw := c.FormValue("displayOrder"); raw != "" {
		displayOrder, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "displayOrder inválido")
		}
		input.DisplayOrder = displayOrder
	}

	asset, err := h.uc.UploadAsset(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Imagen subida")
}

type updateMediaRequest struct {
	Title          *string `json:"title"`
	DisplayOrder   *int    `json:"displayOrder"`
	ObjectFit      *string `json:"objectFit"`
	ObjectPosition *string `json:"objectPosition"`
	IsActive       *bool   `json:"isActive"`
}

// Update handles asset metadata edits.
func (h *MediaHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de recurso inválido")
	}

	var req updateMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de recurso inválidos")
	}

	asset, err := h.uc.UpdateAsset(c.Request().Context(), user.ID, id, &usecase.UpdateMediaInput{
		Title:          req.Title,
		DisplayOrder:   req.DisplayOrder,
		ObjectFit:      req.ObjectFit,
		ObjectPosition: req.ObjectPosition,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "Recurso actualizado")
}

// Delete handles asset removal.
func (h *MediaHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de recurso inválido")
	}

	if err := h.uc.DeleteAsset(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recurso eliminado")
}
