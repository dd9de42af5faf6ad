package handler

import (
	"net/http"
	"net/url"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the Webpay payment flow.
type PaymentHandler struct {
	uc  usecase.PaymentUsecase
	cfg *config.Config
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{uc: uc, cfg: cfg}
}

// Create handles starting a Webpay transaction for a PENDING order. The
// storefront posts the order ID and redirects the buyer to the returned URL.
func (h *PaymentHandler) Create(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de orden inválido")
	}

	output, err := h.uc.CreateTransaction(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"token": output.Token,
		"url":   output.URL,
	}, "Transacción creada")
}

// Return handles the browser coming back from the Webpay form. Webpay sends
// token_ws on a completed payment attempt and TBK_TOKEN when the buyer backs
// out; both arrive as GET or POST depending on the gateway path taken.
func (h *PaymentHandler) Return(c echo.Context) error {
	ctx := c.Request().Context()

	if token := paymentParam(c, "token_ws"); token != "" {
		result, err := h.uc.CommitTransaction(ctx, token)
		if err != nil {
			return c.Redirect(http.StatusFound, h.storefrontResult("error", nil))
		}

		return c.Redirect(http.StatusFound, h.storefrontResult(string(result.Outcome), &result.OrderID))
	}

	if token := paymentParam(c, "TBK_TOKEN"); token != "" {
		result, err := h.uc.AbortTransaction(ctx, token)
		if err != nil {
			return c.Redirect(http.StatusFound, h.storefrontResult("error", nil))
		}

		return c.Redirect(http.StatusFound, h.storefrontResult(string(result.Outcome), &result.OrderID))
	}

	return c.Redirect(http.StatusFound, h.storefrontResult("error", nil))
}

// storefrontResult builds the storefront URL the buyer lands on after the
// payment attempt settles.
func (h *PaymentHandler) storefrontResult(status string, orderID *uuid.UUID) string {
	values := url.Values{"status": {status}}
	if orderID != nil {
		values.Set("orderId", orderID.String())
	}

	return h.cfg.Storefront.BaseURL + "/webpay/return?" + values.Encode()
}

func paymentParam(c echo.Context, name string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}

	return c.FormValue(name)
}
