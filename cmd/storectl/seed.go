package main

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/auth"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newSeedCmd() *cobra.Command {
	var (
		adminEmail    string
		adminPassword string
		withDemoData  bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the admin account, Chilean regions and optional demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if adminPassword == "" {
				return errors.New("--admin-password is required")
			}

			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			db, err := openDB()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if err := seedAdmin(ctx, cfg, db, adminEmail, adminPassword); err != nil {
				return err
			}
			cmd.Println("admin account ready:", adminEmail)

			if err := postgres.NewRegionRepository(db).Seed(ctx, chileanRegions()); err != nil {
				return errors.Wrap(err, "failed to seed regions")
			}
			cmd.Println("regions seeded")

			if withDemoData {
				if err := seedDemoCatalog(ctx, db); err != nil {
					return err
				}
				cmd.Println("demo catalog seeded")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@tienda.cl", "email of the initial admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password of the initial admin account")
	cmd.Flags().BoolVar(&withDemoData, "demo", false, "also create demo categories and products")

	return cmd
}

func seedAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB, email, password string) error {
	userRepo := postgres.NewUserRepository(db)

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		// Already provisioned; never overwrite a live credential.
		return nil
	}

	hashed, err := auth.NewBcryptHasher(cfg).Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         "Admin",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	return errors.Wrap(userRepo.Create(ctx, admin), "failed to create admin account")
}

func seedDemoCatalog(ctx context.Context, db *gorm.DB) error {
	categoryRepo := postgres.NewCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)

	categories := []*entity.Category{
		{Name: "Audio", Slug: "audio"},
		{Name: "Computación", Slug: "computacion"},
		{Name: "Accesorios", Slug: "accesorios"},
	}
	for _, category := range categories {
		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create demo category")
		}
	}

	brand := "TechSur"
	products := []*entity.Product{
		{
			Name:        "Audífonos inalámbricos",
			Description: "Audífonos over-ear con cancelación de ruido.",
			Price:       59990,
			Stock:       25,
			IsActive:    true,
			CategoryID:  &categories[0].ID,
			Brand:       &brand,
			Tags:        []string{"destacado"},
		},
		{
			Name:        "Teclado mecánico",
			Description: "Switches rojos, formato TKL, en español latinoamericano.",
			Price:       44990,
			Stock:       40,
			IsActive:    true,
			CategoryID:  &categories[1].ID,
			Brand:       &brand,
		},
		{
			Name:        "Mochila para notebook",
			Description: "Resistente al agua, hasta 15,6 pulgadas.",
			Price:       24990,
			Stock:       60,
			IsActive:    true,
			CategoryID:  &categories[2].ID,
		},
	}
	for _, product := range products {
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create demo product")
		}
	}

	return nil
}

// chileanRegions returns the 16 regions with their main cities, north to south.
func chileanRegions() []*entity.Region {
	data := []struct {
		name   string
		cities []string
	}{
		{"Arica y Parinacota", []string{"Arica", "Putre"}},
		{"Tarapacá", []string{"Iquique", "Alto Hospicio"}},
		{"Antofagasta", []string{"Antofagasta", "Calama", "Tocopilla"}},
		{"Atacama", []string{"Copiapó", "Vallenar", "Chañaral"}},
		{"Coquimbo", []string{"La Serena", "Coquimbo", "Ovalle"}},
		{"Valparaíso", []string{"Valparaíso", "Viña del Mar", "Quilpué", "San Antonio"}},
		{"Metropolitana de Santiago", []string{"Santiago", "Puente Alto", "Maipú", "San Bernardo"}},
		{"Libertador General Bernardo O'Higgins", []string{"Rancagua", "San Fernando", "Rengo"}},
		{"Maule", []string{"Talca", "Curicó", "Linares"}},
		{"Ñuble", []string{"Chillán", "San Carlos"}},
		{"Biobío", []string{"Concepción", "Talcahuano", "Los Ángeles"}},
		{"La Araucanía", []string{"Temuco", "Villarrica", "Angol"}},
		{"Los Ríos", []string{"Valdivia", "La Unión"}},
		{"Los Lagos", []string{"Puerto Montt", "Osorno", "Castro"}},
		{"Aysén del General Carlos Ibáñez del Campo", []string{"Coyhaique", "Puerto Aysén"}},
		{"Magallanes y de la Antártica Chilena", []string{"Punta Arenas", "Puerto Natales"}},
	}

	regions := make([]*entity.Region, 0, len(data))
	for _, item := range data {
		region := &entity.Region{Name: item.name}
		for _, city := range item.cities {
			region.Cities = append(region.Cities, entity.City{Name: city})
		}
		regions = append(regions, region)
	}

	return regions
}
