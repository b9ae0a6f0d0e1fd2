package models

import "time"

// Slot is one entry of the local key-value storage table
type Slot struct {
	Key       string    `gorm:"column:slot_key;primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
