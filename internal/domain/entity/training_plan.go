package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainingPlan is a user's weekly training program.
type TrainingPlan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	StartDate time.Time
	CreatedAt time.Time
}

// TrainingDay is one numbered day-of-week template within a plan.
// DayNumber follows ISO numbering: Monday=1 .. Sunday=7.
type TrainingDay struct {
	ID                uuid.UUID
	PlanID            uuid.UUID
	DayNumber         int
	Title             string
	EstimatedDuration *int
	Exercises         []PlannedExercise
}

// PlannedExercise is one catalog exercise scheduled on a training day with
// its set count and rep range.
type PlannedExercise struct {
	ID         uuid.UUID
	ExerciseID uuid.UUID
	Name       string
	SetCount   int
	RepMin     int
	RepMax     int
}
