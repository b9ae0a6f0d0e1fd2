package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/todolist/internal/models"
)

// SlotStore is a string key-value storage
type SlotStore interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// Slots stores string values by key in the slots table
type Slots struct {
	db *gorm.DB
}

// Get returns the value stored under key. A missing key is not an error.
func (s *Slots) Get(key string) (string, bool, error) {
	var slot models.Slot

	err := s.db.Where("slot_key = ?", key).Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}

	return slot.Value, true, nil
}

// Put overwrites the value stored under key
func (s *Slots) Put(key, value string) error {
	slot := models.Slot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Slots) Delete(key string) error {
	if err := s.db.Where("slot_key = ?", key).Delete(&models.Slot{}).Error; err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}
