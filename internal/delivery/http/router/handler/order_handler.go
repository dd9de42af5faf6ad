package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc      usecase.OrderUsecase
	guestUC usecase.GuestCheckoutUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, guestUC usecase.GuestCheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, guestUC: guestUC, logger: logger}
}

type orderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Qty       int       `json:"qty" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Email           string             `json:"email" validate:"required,email"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress map[string]any     `json:"shippingAddress"`
}

// Create handles order placement for both logged-in customers and guests.
// Guest orders immediately get an OTP email so the buyer can track them.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de orden inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateOrderInput{
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{ProductID: item.ProductID, Qty: item.Qty})
	}

	if user, ok := middleware.CurrentUser(c); ok {
		input.UserID = &user.ID
		input.Email = user.Email
	}

	ctx := c.Request().Context()

	order, err := h.uc.CreateOrder(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Kick off guest verification right away. A failed email must not void
	// the order; the guest can always request the code again.
	if order.UserID == nil {
		if err := h.guestUC.RequestOtp(ctx, &usecase.GuestOtpInput{
			OrderID: order.ID,
			Email:   order.CustomerEmail,
		}); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).
				Warn("Failed to send initial guest otp", slog.Any("orderID", order.ID), slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusCreated, order, "Orden creada")
}

// ListMine handles the customer's own order history.
func (h *OrderHandler) ListMine(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// List handles the staff order listing with paging.
func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListOrders(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": output.Orders,
		"total":  output.Total,
		"page":   output.Page,
		"limit":  output.Limit,
	}, "")
}

// Get handles a single order fetch for its owner or staff.
func (h *OrderHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de orden inválido")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Cancel handles order cancellation by its owner or staff.
func (h *OrderHandler) Cancel(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de orden inválido")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Orden cancelada")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles staff moving an order between lifecycle states.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de orden inválido")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de estado inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), user, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Estado actualizado")
}
