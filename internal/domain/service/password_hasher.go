// Package service defines interfaces for stateless domain logic that does
// not belong to any single entity.
package service

// PasswordHasher hashes and verifies account credentials. It hides the
// algorithm (bcrypt in the infra layer) from the domain, so cost tuning or
// a future migration never touches business code.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
