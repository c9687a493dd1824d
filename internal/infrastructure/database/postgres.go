package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/njorogedev/leathercraft-api/internal/config"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Map driver-specific constraint violations onto gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		// Platform entities
		&entity.Tenant{},
		&entity.User{},
		&entity.TenantUser{},

		// Catalog and party entities
		&entity.Product{},
		&entity.Customer{},
		&entity.Vendor{},
		&entity.LeatherSupplier{},
		&entity.LeatherType{},

		// Order entities
		&entity.SalesOrder{},
		&entity.SalesOrderLine{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderLine{},
		&entity.LeatherPurchaseOrder{},
		&entity.LeatherPurchaseOrderLine{},

		// Financial entities
		&entity.Invoice{},
		&entity.Payment{},

		// System entities
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
