package router

import (
	"net/http"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestUploadLimit(t *testing.T) {
	t.Run("uses configured media limit", func(t *testing.T) {
		cfg := &config.Config{Media: &config.MediaConfig{MaxUploadSize: "25MB"}}

		assert.Equal(t, "25MB", uploadLimit(cfg))
	})

	t.Run("falls back when media is unconfigured", func(t *testing.T) {
		assert.Equal(t, defaultUploadLimit, uploadLimit(&config.Config{}))
	})

	t.Run("falls back when the limit is empty", func(t *testing.T) {
		cfg := &config.Config{Media: &config.MediaConfig{BucketURL: "file:///tmp/media"}}

		assert.Equal(t, defaultUploadLimit, uploadLimit(cfg))
	})
}

func TestRegisterRoutes_UpdateVerbs(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{},
		Otp:  &config.OtpConfig{},
	}

	e := echo.New()
	NewRouter(RouterParams{
		Config:          cfg,
		AuthHandler:     &handler.AuthHandler{},
		ProductHandler:  &handler.ProductHandler{},
		CategoryHandler: &handler.CategoryHandler{},
		OrderHandler:    &handler.OrderHandler{},
		GuestHandler:    &handler.GuestHandler{},
		PaymentHandler:  &handler.PaymentHandler{},
		MediaHandler:    &handler.MediaHandler{},
		AdminHandler:    &handler.AdminHandler{},
		AddressHandler:  &handler.AddressHandler{},
		LocationHandler: &handler.LocationHandler{},
		AuthMiddleware:  &middleware.AuthMiddleware{},
	}).RegisterRoutes(e)

	methods := make(map[string]string, len(e.Routes()))
	for _, route := range e.Routes() {
		methods[route.Method+" "+route.Path] = route.Method
	}

	// Partial updates ride PATCH; PUT is not part of the API surface.
	assert.Contains(t, methods, http.MethodPatch+" /products/:id")
	assert.Contains(t, methods, http.MethodPatch+" /categories/:id")
	assert.NotContains(t, methods, http.MethodPut+" /products/:id")
	assert.NotContains(t, methods, http.MethodPut+" /categories/:id")
}
