package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session represents one workout occurrence.
// It is created at session start with only StartTime set, mutated once at
// completion (EndTime and Duration), and immutable afterward.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StartTime time.Time
	EndTime   *time.Time
	// Duration is the stored elapsed time in seconds, derived at completion.
	Duration *int
}

// ExerciseSet is one completed set recorded during an active session.
// Sets are written incrementally and never updated after creation.
type ExerciseSet struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	UserID      uuid.UUID
	ExerciseID  uuid.UUID
	SetNumber   int
	Weight      decimal.Decimal
	Reps        int
	CompletedAt time.Time
}

// SessionSummary aggregates a completed session's sets. It is computed once
// when the session completes and read by the workout-history listing.
type SessionSummary struct {
	SessionID              uuid.UUID
	UserID                 uuid.UUID
	TotalSets              int
	TotalReps              int
	TotalVolume            decimal.Decimal
	MaxWeightLifted        decimal.Decimal
	TotalDistinctExercises int
	TopExerciseName        string
	TopExerciseWeight      decimal.Decimal
	TopExerciseReps        int
}
