package repository

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
)

// RegionRepository defines the interface for region/city reference data.
type RegionRepository interface {
	// List retrieves all regions with their cities, both name-ordered.
	List(ctx context.Context) ([]*entity.Region, error)

	// Seed inserts reference data when the table is empty.
	Seed(ctx context.Context, regions []*entity.Region) error
}
