package service

// OtpService defines generation and verification of guest checkout codes.
// Codes are never stored in clear; only their keyed hash is persisted.
type OtpService interface {
	// GenerateCode produces a random six digit numeric code.
	GenerateCode() (string, error)

	// HashCode returns the hex-encoded HMAC of a code under the server secret.
	HashCode(code string) string

	// VerifyCode compares a submitted code against a stored hash in constant time.
	VerifyCode(code, storedHash string) bool
}

// OtpMailer delivers OTP codes to guest customers.
type OtpMailer interface {
	// SendOtp emails the code to the given address.
	SendOtp(email, code string) error
}
