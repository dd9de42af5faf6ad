// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
)

const (
	tokenTypeAccess = "access"
	tokenTypeGuest  = "guest"

	defaultAccessTTL = 7 * 24 * time.Hour
	defaultGuestTTL  = 30 * time.Minute
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access tokens and guest order tokens are signed with separate secrets so a
// leaked guest secret can never mint an admin session.
type jwtService struct {
	accessSecret string
	guestSecret  string
	accessTTL    time.Duration
	guestTTL     time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Guest == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret: cfg.SecretKey.Access,
		guestSecret:  cfg.SecretKey.Guest,
		accessTTL:    defaultAccessTTL,
		guestTTL:     defaultGuestTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.GuestTokenTTL > 0 {
			svc.guestTTL = cfg.Auth.GuestTokenTTL
		}
	}

	return svc, nil
}

// GenerateAccessToken creates a signed access token carrying the user's role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"type": tokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateAccessToken checks an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims, err := s.parse(tokenString, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.New("invalid role claim")
	}

	return &service.AccessClaims{UserID: userID, Role: role}, nil
}

// GenerateGuestOrderToken creates a short-lived token scoped to one order and email.
func (s *jwtService) GenerateGuestOrderToken(orderID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   orderID.String(),
		"email": email,
		"type":  tokenTypeGuest,
		"iat":   now.Unix(),
		"exp":   now.Add(s.guestTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.guestSecret))
}

// ValidateGuestOrderToken checks a guest order token and returns its claims.
func (s *jwtService) ValidateGuestOrderToken(tokenString string) (*service.GuestOrderClaims, error) {
	claims, err := s.parse(tokenString, s.guestSecret, tokenTypeGuest)
	if err != nil {
		return nil, err
	}

	orderID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing")
	}

	return &service.GuestOrderClaims{OrderID: orderID, Email: email}, nil
}

// parse validates signature, expiry and the token type discriminator.
func (s *jwtService) parse(tokenString, secret, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return nil, errors.New("unexpected token type")
	}

	return claims, nil
}

func subjectUUID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid subject claim")
	}

	return id, nil
}
