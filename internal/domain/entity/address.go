package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved shipping address belonging to a user.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	IsDefault bool // At most one default address per user.
	CreatedAt time.Time
	UpdatedAt time.Time
}
