package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Price is stored in Chilean pesos, which have no
// minor unit, so it is a plain integer.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int
	Image       string   // Primary image URL.
	Images      []string // Additional gallery image URLs.
	Stock       int      // On-hand units. Never negative.
	IsActive    bool     // Inactive products are hidden from the storefront and cannot be ordered.
	CategoryID  *uuid.UUID
	Category    *Category
	Brand       *string
	SKU         *string
	Weight      *float64
	Tags        []string
	Views       int // Storefront detail page view counter.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
