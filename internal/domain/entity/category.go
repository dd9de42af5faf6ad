package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for storefront navigation.
type Category struct {
	ID        uuid.UUID
	Name      string // Unique display name.
	Slug      string // Unique URL fragment.
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProductCount is populated on listings only.
	ProductCount int
}
