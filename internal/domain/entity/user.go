// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the store: customers, workers and admins
// share the same record and differ only by Role.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // Login identifier, unique across the system.
	PasswordHash string    // bcrypt hash of the password. Never serialized to clients.
	FullName     string    // Display name, usually "Name LastName".
	Name         string
	LastName     string
	Phone        string    // Chilean mobile format: +56 followed by 9 digits.
	RUN          *string   // Optional national identity number, unique when present.
	Role         Role      // ADMIN, WORKER or CUSTOMER.
	IsActive     bool      // Disabled accounts cannot log in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
