package main

import (
	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}

			// uuid_generate_v7 backs every primary key default.
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pg_uuidv7"`).Error; err != nil {
				return errors.Wrap(err, "failed to create uuid extension")
			}

			if err := db.AutoMigrate(
				&model.UserModel{},
				&model.AddressModel{},
				&model.CategoryModel{},
				&model.ProductModel{},
				&model.OrderModel{},
				&model.OrderItemModel{},
				&model.OrderOtpModel{},
				&model.RegionModel{},
				&model.CityModel{},
				&model.MediaAssetModel{},
				&model.AuditLogModel{},
			); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			cmd.Println("schema up to date")

			return nil
		},
	}
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	return db, nil
}
