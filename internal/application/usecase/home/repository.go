// Package home contains the home screen summary use case.
package home

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
)

// HomeRepository defines the reads the home summary needs.
type HomeRepository interface {
	// ActivePlan returns the user's training plan, nil when none exists.
	ActivePlan(ctx context.Context, userID uuid.UUID) (*entity.TrainingPlan, error)

	// TrainingDayByNumber returns the plan's training day for the given day
	// number with its planned exercises, nil when the day has no entry.
	TrainingDayByNumber(ctx context.Context, planID uuid.UUID, dayNumber int) (*entity.TrainingDay, error)

	// CountSessionsBetween counts the user's sessions started in [from, to].
	CountSessionsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// BestSetForExercise returns the heaviest set ever recorded for the
	// named exercise, preferring the most recent session on ties; nil when
	// no set exists.
	BestSetForExercise(ctx context.Context, userID uuid.UUID, exerciseName string) (*BestSet, error)
}

// BestSet is the heaviest recorded set joined to its session start time.
type BestSet struct {
	ExerciseName     string
	Weight           decimal.Decimal
	SessionStartTime time.Time
}
