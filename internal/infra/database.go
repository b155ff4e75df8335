// Package infra holds the process-level infrastructure: the SQLite storage
// handle the whole application shares.
package infra

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// NewDatabase opens (creating if needed) the SQLite database file and runs
// AutoMigrate for all tables. SQLite keeps the whole store in one local file,
// which is exactly the deployment model: one vessel, one machine, no server.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// SQLite ships with foreign keys off; transaction items rely on the
	// cascade.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Single writer: SQLite serializes writes anyway, and a second connection
	// only buys "database is locked" errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.CrewMember{},
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.ReportSettings{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
