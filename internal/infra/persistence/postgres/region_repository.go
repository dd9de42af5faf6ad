package postgres

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// regionRepository implements the repository.RegionRepository interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// List retrieves all regions with their cities, both name-ordered.
func (repo *regionRepository) List(ctx context.Context) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	if err := repo.db.WithContext(ctx).
		Preload("Cities", func(db *gorm.DB) *gorm.DB {
			return db.Order("cities.name ASC")
		}).
		Order("name ASC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, nil
}

// Seed inserts reference data when the table is empty.
func (repo *regionRepository) Seed(ctx context.Context, regions []*entity.Region) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RegionModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count regions")
	}
	if count > 0 {
		return nil
	}

	regionModels := make([]*model.RegionModel, 0, len(regions))
	for _, region := range regions {
		regionModels = append(regionModels, fromRegionDomain(region))
	}

	if err := repo.db.WithContext(ctx).Create(&regionModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed regions")
	}

	return nil
}

// --- Mapper Functions ---

// toRegionDomain converts a GORM RegionModel to a domain Region entity.
func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	region := &entity.Region{
		ID:   data.ID,
		Name: data.Name,
	}
	region.Cities = make([]entity.City, 0, len(data.Cities))
	for _, cityM := range data.Cities {
		region.Cities = append(region.Cities, entity.City{
			ID:       cityM.ID,
			RegionID: cityM.RegionID,
			Name:     cityM.Name,
		})
	}

	return region
}

// fromRegionDomain converts a domain Region entity to a GORM RegionModel.
func fromRegionDomain(data *entity.Region) *model.RegionModel {
	if data == nil {
		return nil
	}

	regionM := &model.RegionModel{
		ID:   data.ID,
		Name: data.Name,
	}
	regionM.Cities = make([]model.CityModel, 0, len(data.Cities))
	for _, city := range data.Cities {
		regionM.Cities = append(regionM.Cities, model.CityModel{
			ID:       city.ID,
			RegionID: city.RegionID,
			Name:     city.Name,
		})
	}

	return regionM
}
