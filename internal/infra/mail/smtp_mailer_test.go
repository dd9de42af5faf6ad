package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOtpBody_UsesConfiguredTTL(t *testing.T) {
	body := otpBody("482913", 5*time.Minute)

	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "expira en 5 minutos")
}
