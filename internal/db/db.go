package db

import (
	"github.com/MyelinBots/checkinbot-go/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the shared gorm handle.
type DB struct {
	DB *gorm.DB
}

// NewDB opens the sqlite file backing the check-in store.
func NewDB(cfg config.DBConfig) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &DB{DB: gormDB}, nil
}

// Migrate creates tables for the given models if they do not exist.
// Safe to call more than once.
func (d *DB) Migrate(models ...interface{}) error {
	return d.DB.AutoMigrate(models...)
}
