package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fittrack/backend/internal/domain/entity"
)

// ExerciseModel represents the exercises table in the database. The catalog
// is shared across users; user-created entries get default metadata.
type ExerciseModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type          string         `gorm:"type:varchar(50);not null;index"`
	ImageURL      string         `gorm:"type:text"`
	Description   string         `gorm:"type:text"`
	TargetMuscles pq.StringArray `gorm:"type:text[]"`
	Difficulty    string         `gorm:"type:varchar(20)"`
	Equipment     string         `gorm:"type:varchar(50)"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ExerciseModel.
func (ExerciseModel) TableName() string {
	return "exercises"
}

// ToEntity converts an ExerciseModel to a domain Exercise entity.
func (m *ExerciseModel) ToEntity() *entity.Exercise {
	return &entity.Exercise{
		ID:            m.ID,
		Name:          m.Name,
		Type:          m.Type,
		ImageURL:      m.ImageURL,
		Description:   m.Description,
		TargetMuscles: []string(m.TargetMuscles),
		Difficulty:    m.Difficulty,
		Equipment:     m.Equipment,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExerciseFromEntity converts a domain Exercise entity to an ExerciseModel.
func ExerciseFromEntity(exercise *entity.Exercise) *ExerciseModel {
	return &ExerciseModel{
		ID:            exercise.ID,
		Name:          exercise.Name,
		Type:          exercise.Type,
		ImageURL:      exercise.ImageURL,
		Description:   exercise.Description,
		TargetMuscles: pq.StringArray(exercise.TargetMuscles),
		Difficulty:    exercise.Difficulty,
		Equipment:     exercise.Equipment,
		CreatedAt:     exercise.CreatedAt,
		UpdatedAt:     exercise.UpdatedAt,
	}
}
