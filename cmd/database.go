package cmd

import (
	"fmt"

	"coffeequeue/internal/adapters/out/postgres/orderrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase opens the PostgreSQL connection and ensures the orders table
// exists. The returned handle is the single store handle of the process:
// opened at start, shared by every unit of work and query, closed at shutdown
// via CloseDatabase.
func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// CloseDatabase closes the underlying connection pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
