package auth

import (
	"testing"
	"time"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Guest = "test_guest_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL: time.Hour,
		GuestTokenTTL:  30 * time.Minute,
	}

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID, entity.RoleWorker)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleWorker, claims.Role)
}

func TestJWTService_GenerateAndValidateGuestOrderToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	orderID := uuid.New()
	email := "guest@example.com"

	token, err := jwtService.GenerateGuestOrderToken(orderID, email)
	require.NoError(t, err)

	claims, err := jwtService.ValidateGuestOrderToken(token)
	require.NoError(t, err)
	assert.Equal(t, orderID, claims.OrderID)
	assert.Equal(t, email, claims.Email)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)
	guestToken, err := jwtService.GenerateGuestOrderToken(uuid.New(), "guest@example.com")
	require.NoError(t, err)

	// An access token must not be accepted as a guest token and vice versa:
	// they are signed with different secrets and carry different type claims.
	_, err = jwtService.ValidateGuestOrderToken(accessToken)
	assert.Error(t, err)
	_, err = jwtService.ValidateAccessToken(guestToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
