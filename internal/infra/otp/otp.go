// Package otp implements generation and keyed hashing of guest checkout codes.
package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
)

const codeSpace = 1000000 // six digit codes, 000000 through 999999

type hmacOtpService struct {
	secret []byte
}

// NewOtpService is the constructor for hmacOtpService.
func NewOtpService(cfg *config.Config) (service.OtpService, error) {
	if cfg.SecretKey.Otp == "" {
		return nil, errors.New("otp secret must be provided")
	}

	return &hmacOtpService{secret: []byte(cfg.SecretKey.Otp)}, nil
}

// GenerateCode draws a uniform six digit code from crypto/rand.
func (s *hmacOtpService) GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", errors.Wrap(err, "generate otp code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HashCode returns the hex-encoded HMAC-SHA256 of the code under the server secret.
func (s *hmacOtpService) HashCode(code string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(code))

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCode compares in constant time so timing cannot leak digit matches.
func (s *hmacOtpService) VerifyCode(code, storedHash string) bool {
	computed := s.HashCode(code)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
