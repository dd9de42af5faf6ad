package otp

import (
	"testing"

	"github.com/sebvsnk/Base-E-commerce/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *hmacOtpService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Otp = "test_otp_secret"

	svc, err := NewOtpService(cfg)
	require.NoError(t, err)

	return svc.(*hmacOtpService)
}

func TestOtpService_GenerateCode(t *testing.T) {
	svc := newTestService(t)

	code, err := svc.GenerateCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Regexp(t, `^\d{6}$`, code)
}

func TestOtpService_HashAndVerify(t *testing.T) {
	svc := newTestService(t)

	hash := svc.HashCode("123456")
	assert.Len(t, hash, 64) // hex-encoded sha256
	assert.NotEqual(t, "123456", hash)

	assert.True(t, svc.VerifyCode("123456", hash))
	assert.False(t, svc.VerifyCode("654321", hash))
	assert.False(t, svc.VerifyCode("123456", "deadbeef"))
}

func TestOtpService_HashDependsOnSecret(t *testing.T) {
	svc := newTestService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Otp = "another_secret"
	other, err := NewOtpService(otherCfg)
	require.NoError(t, err)

	assert.NotEqual(t, svc.HashCode("123456"), other.HashCode("123456"))
}

func TestNewOtpService_MissingSecret(t *testing.T) {
	_, err := NewOtpService(&config.Config{})
	assert.Error(t, err)
}
