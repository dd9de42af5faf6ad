package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
)

// LocationUsecase defines the interface for Chilean region/city reference
// data used by the checkout address form.
type LocationUsecase interface {
	// ListRegions retrieves all regions with their cities.
	ListRegions(ctx context.Context) ([]*entity.Region, error)
}
