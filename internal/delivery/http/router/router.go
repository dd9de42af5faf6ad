// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/router/handler"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultLoginRateLimit = 5
	defaultOtpRateLimit   = 3
	defaultUploadLimit    = "10MB"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	Config          *config.Config
	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	OrderHandler    *handler.OrderHandler
	GuestHandler    *handler.GuestHandler
	PaymentHandler  *handler.PaymentHandler
	MediaHandler    *handler.MediaHandler
	AdminHandler    *handler.AdminHandler
	AddressHandler  *handler.AddressHandler
	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware

	staff := []entity.Role{entity.RoleAdmin, entity.RoleWorker}

	// Credential and OTP endpoints are brute-forceable, so they carry
	// per-IP rate limits.
	loginLimiter := rateLimiter(p.Config.Auth.LoginRateLimit, defaultLoginRateLimit)
	otpLimiter := rateLimiter(p.Config.Otp.RequestRateLimit, defaultOtpRateLimit)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login, loginLimiter)
		authGroup.GET("/me", p.AuthHandler.Me, auth.Authenticate)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.List, auth.OptionalAuthenticate)
		productGroup.GET("/brands", p.ProductHandler.Brands)
		productGroup.GET("/:id", p.ProductHandler.Get)
		productGroup.POST("/:id/view", p.ProductHandler.CountView)
		productGroup.POST("", p.ProductHandler.Create, auth.Authenticate, auth.RequireRole(staff...))
		productGroup.PATCH("/:id", p.ProductHandler.Update, auth.Authenticate, auth.RequireRole(staff...))
		productGroup.POST("/:id/disable", p.ProductHandler.Disable, auth.Authenticate, auth.RequireRole(staff...))
		productGroup.DELETE("/:id", p.ProductHandler.Delete, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", p.CategoryHandler.List)
		categoryGroup.POST("", p.CategoryHandler.Create, auth.Authenticate, auth.RequireRole(staff...))
		categoryGroup.PATCH("/:id", p.CategoryHandler.Update, auth.Authenticate, auth.RequireRole(staff...))
		categoryGroup.DELETE("/:id", p.CategoryHandler.Delete, auth.Authenticate, auth.RequireRole(staff...))
	}

	orderGroup := e.Group("/orders")
	{
		// Guests place orders too; a valid session only attaches the order
		// to the account.
		orderGroup.POST("", p.OrderHandler.Create, auth.OptionalAuthenticate)
		orderGroup.GET("/mine", p.OrderHandler.ListMine, auth.Authenticate)
		orderGroup.GET("", p.OrderHandler.List, auth.Authenticate, auth.RequireRole(staff...))
		orderGroup.GET("/:id", p.OrderHandler.Get, auth.Authenticate)
		orderGroup.POST("/:id/cancel", p.OrderHandler.Cancel, auth.Authenticate)
		orderGroup.PATCH("/:id/status", p.OrderHandler.UpdateStatus, auth.Authenticate, auth.RequireRole(staff...))
	}

	guestGroup := e.Group("/guest/orders")
	{
		guestGroup.POST("/otp/request", p.GuestHandler.RequestOtp, otpLimiter)
		guestGroup.POST("/otp/resend", p.GuestHandler.ResendOtp, otpLimiter)
		guestGroup.POST("/otp/verify", p.GuestHandler.VerifyOtp, otpLimiter)
		guestGroup.GET("/me", p.GuestHandler.GetOrder, auth.AuthenticateGuest)
		guestGroup.POST("/me/cancel", p.GuestHandler.CancelOrder, auth.AuthenticateGuest)
	}

	paymentGroup := e.Group("/payments")
	{
		paymentGroup.POST("/orders/:orderId", p.PaymentHandler.Create)
		// Webpay redirects the browser back here with GET or POST.
		paymentGroup.GET("/webpay/return", p.PaymentHandler.Return)
		paymentGroup.POST("/webpay/return", p.PaymentHandler.Return)
	}

	mediaGroup := e.Group("/media")
	{
		mediaGroup.GET("/type/:type", p.MediaHandler.ListByType)
		mediaGroup.GET("/section/:section", p.MediaHandler.GetBySection)
		mediaGroup.GET("", p.MediaHandler.List, auth.Authenticate, auth.RequireRole(staff...))
		mediaGroup.POST("", p.MediaHandler.Upload,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin),
			echomiddleware.BodyLimit(uploadLimit(p.Config)))
		mediaGroup.PATCH("/:id", p.MediaHandler.Update, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		mediaGroup.DELETE("/:id", p.MediaHandler.Delete, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	}

	addressGroup := e.Group("/addresses", auth.Authenticate)
	{
		addressGroup.GET("", p.AddressHandler.ListMine)
		addressGroup.POST("", p.AddressHandler.Create)
	}

	e.GET("/locations/regions", p.LocationHandler.ListRegions)

	adminGroup := e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.POST("/users", p.AdminHandler.CreateUser)
		adminGroup.PATCH("/users/:id", p.AdminHandler.UpdateUser)
		adminGroup.POST("/users/:id/reset-password", p.AdminHandler.ResetPassword)
		adminGroup.GET("/audit-logs", p.AdminHandler.ListAuditLogs)
	}
}

// uploadLimit is the body cap for image uploads, which the global request
// body limit exempts. Falls back to 10MB when unconfigured.
func uploadLimit(cfg *config.Config) string {
	if cfg.Media != nil && cfg.Media.MaxUploadSize != "" {
		return cfg.Media.MaxUploadSize
	}

	return defaultUploadLimit
}

// rateLimiter builds an in-memory per-IP limiter. limit is requests per
// second; zero falls back to the given default.
func rateLimiter(limit, fallback float64) echo.MiddlewareFunc {
	if limit <= 0 {
		limit = fallback
	}

	return echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(limit)),
	)
}
