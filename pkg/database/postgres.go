package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pushadmin-backend/pkg/config"
)

// NewPostgresConnection opens the process-wide GORM connection. It is called
// once at startup and the returned *gorm.DB is shared across all requests.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	log.Println("[DB] Connected to Postgres")
	return db, nil
}
