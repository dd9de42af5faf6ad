package handler

import (
	"net/http"

	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for saved shipping address handlers.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// ListMine handles the customer's saved address listing.
func (h *AddressHandler) ListMine(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	addresses, err := h.uc.ListMyAddresses(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

type createAddressRequest struct {
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// Create handles saving a shipping address.
func (h *AddressHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dirección inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), user.ID, &usecase.CreateAddressInput{
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Dirección guardada")
}
