package database

import (
	"fmt"
	"go-storefront/internal/common/models"
	"go-storefront/internal/pkg/logger"
)

func (db *Database) RunMigrations() error {
	logger.Info.Println("Starting database migrations...")

	if db.Config != nil && db.Config.Driver == POSTGRES {
		if err := db.createExtensions(); err != nil {
			return fmt.Errorf("failed to create extensions: %w", err)
		}
	}

	models := []interface{}{
		&models.AssetIngestion{},
	}

	for _, model := range models {
		logger.Info.Printf("Migrating model: %T", model)
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	logger.Info.Println("Database migrations completed successfully")
	return nil
}

func (db *Database) createExtensions() error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`).Error
}
