package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tourmuse/internal/config"
	"tourmuse/internal/models/db_models"
	"tourmuse/pkg/logger"
)

// InitPostgresql opens the catalog database holding hotel and city-guide
// reference data.
func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(&db_models.Hotel{}, &db_models.CityGuide{}); err != nil {
		logger.Log.Fatalf("Error migrating catalog tables: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Errorf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Log.Errorf("Error closing database connection: %v", err)
	}
}
