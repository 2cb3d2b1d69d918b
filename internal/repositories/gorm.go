package repositories

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shoplite/internal/models"
)

// OpenDB opens a GORM connection for the configured backend. The DSN decides
// the flavor for "sqlite" (file path or file::memory:) and "postgres".
func OpenDB(backend, dsn string) (*gorm.DB, error) {
	switch strings.ToLower(backend) {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported store backend %q", backend)
	}
}

// MigrateUserDB creates the user service schema.
func MigrateUserDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

// MigrateOrderDB creates the order service schema.
func MigrateOrderDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{})
}
