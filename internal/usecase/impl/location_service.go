package impl

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	regionRepo repository.RegionRepository
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	RegionRepo repository.RegionRepository
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		regionRepo: params.RegionRepo,
	}
}

// ListRegions retrieves all regions with their cities.
func (srv *locationService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.regionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return regions, nil
}
