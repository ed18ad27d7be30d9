package models

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntry represents a row of the append-only 'weight_history' table.
type WeightEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Weight    float64   `json:"weight" db:"weight"`         // kg
	Date      time.Time `json:"date" db:"date"`             // Calendar date of the measurement
	Notes     *string   `json:"notes,omitempty" db:"notes"` // Optional, pointer for NULL
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Breaks ties between entries on the same date
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// --- DTOs ---

// CreateWeightEntryRequest logs a new weight measurement.
type CreateWeightEntryRequest struct {
	Weight float64 `json:"weight" validate:"required,gt=0,lt=500"`
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateWeightEntryRequest edits an existing entry. Only provided fields change.
type UpdateWeightEntryRequest struct {
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lt=500"`
	Date   *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes  *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}
