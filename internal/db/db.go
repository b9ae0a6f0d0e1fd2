package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/todolist/internal/models"
)

// DB wraps the gorm connection to the local database file
type DB struct {
	gorm *gorm.DB
}

// Open sets up the database connection and runs migrations
func Open(dbPath string) (*DB, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	d := &DB{gorm: conn}
	if err := d.runMigrations(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// runMigrations creates/updates the database schema
func (d *DB) runMigrations() error {
	return d.gorm.AutoMigrate(&models.Slot{})
}

// Slots returns the key-value slot table
func (d *DB) Slots() *Slots {
	return &Slots{db: d.gorm}
}

// Close closes the database connection
func (d *DB) Close() error {
	if d == nil || d.gorm == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
