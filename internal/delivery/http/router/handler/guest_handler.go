package handler

import (
	"net/http"

	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuestHandler holds dependencies for the guest checkout OTP flow.
type GuestHandler struct {
	uc usecase.GuestCheckoutUsecase
}

// NewGuestHandler is the constructor for GuestHandler, injected by Fx.
func NewGuestHandler(uc usecase.GuestCheckoutUsecase) *GuestHandler {
	return &GuestHandler{uc: uc}
}

type guestOtpRequest struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
}

// RequestOtp handles a guest asking for a verification code.
func (h *GuestHandler) RequestOtp(c echo.Context) error {
	var req guestOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestOtp(c.Request().Context(), &usecase.GuestOtpInput{
		OrderID: req.OrderID,
		Email:   req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código enviado")
}

// ResendOtp handles a guest asking for a fresh code.
func (h *GuestHandler) ResendOtp(c echo.Context) error {
	var req guestOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResendOtp(c.Request().Context(), &usecase.GuestOtpInput{
		OrderID: req.OrderID,
		Email:   req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código reenviado")
}

type verifyOtpRequest struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
	Code    string    `json:"code" validate:"required,len=6"`
}

// VerifyOtp handles code verification and returns the order-scoped token.
func (h *GuestHandler) VerifyOtp(c echo.Context) error {
	var req verifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.VerifyOtp(c.Request().Context(), &usecase.VerifyOtpInput{
		OrderID: req.OrderID,
		Email:   req.Email,
		Code:    req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"guestToken": output.GuestToken,
		"order":      output.Order,
	}, "Código verificado")
}

// GetOrder handles a guest fetching the order their token is scoped to.
func (h *GuestHandler) GetOrder(c echo.Context) error {
	claims, ok := middleware.GuestClaims(c)
	if !ok {
		return response.Unauthorized(c, "GUEST_TOKEN_INVALID", "Se requiere un token de invitado")
	}

	order, err := h.uc.GetGuestOrder(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// CancelOrder handles a guest cancelling the order their token is scoped to.
func (h *GuestHandler) CancelOrder(c echo.Context) error {
	claims, ok := middleware.GuestClaims(c)
	if !ok {
		return response.Unauthorized(c, "GUEST_TOKEN_INVALID", "Se requiere un token de invitado")
	}

	order, err := h.uc.CancelGuestOrder(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Orden cancelada")
}
