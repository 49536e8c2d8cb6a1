package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exercise represents an entry in the shared exercise catalog.
type Exercise struct {
	ID            uuid.UUID
	Name          string
	Type          string
	ImageURL      string
	Description   string
	TargetMuscles []string
	Difficulty    string
	Equipment     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
