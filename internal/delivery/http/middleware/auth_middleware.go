package middleware

import (
	"net/http"
	"strings"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextUserKey is where Authenticate stores the *entity.User.
	ContextUserKey = "authUser"

	// ContextGuestClaimsKey is where AuthenticateGuest stores the
	// *service.GuestOrderClaims.
	ContextGuestClaimsKey = "guestClaims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and loads the account. Tokens of
// disabled accounts stop working immediately, not at expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Se requiere un token Bearer")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido o expirado")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.IsActive {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido o expirado")
		}

		c.Set(ContextUserKey, user)

		return next(c)
	}
}

// OptionalAuthenticate loads the account when a valid token is present and
// lets the request through anonymously otherwise. Used on public routes
// whose behavior is richer for logged-in callers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return next(c)
		}

		if user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID); err == nil && user.IsActive {
			c.Set(ContextUserKey, user)
		}

		return next(c)
	}
}

// RequireRole gates a route group to the given roles. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Se requiere autenticación")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Acceso denegado")
		}
	}
}

// AuthenticateGuest validates a guest order token issued by OTP verification.
// The token arrives as a Bearer token just like a regular session.
func (m *AuthMiddleware) AuthenticateGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Se requiere un token de invitado")
		}

		claims, err := m.tokenSvc.ValidateGuestOrderToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token de invitado inválido o expirado")
		}

		c.Set(ContextGuestClaimsKey, claims)

		return next(c)
	}
}

// CurrentUser returns the account Authenticate stored on the context.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextUserKey).(*entity.User)

	return user, ok
}

// GuestClaims returns the claims AuthenticateGuest stored on the context.
func GuestClaims(c echo.Context) (*service.GuestOrderClaims, bool) {
	claims, ok := c.Get(ContextGuestClaimsKey).(*service.GuestOrderClaims)

	return claims, ok
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
