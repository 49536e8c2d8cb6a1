package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressRepository defines the raw-row reads the progress analytics need.
type ProgressRepository interface {
	// ListBodyStatSamples returns the user's body-stat weights recorded in
	// [from, to], ascending by recorded_at.
	ListBodyStatSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Sample, error)

	// LatestWeightBetween returns the most recent body-stat weight recorded
	// in [from, to]; invalid when no row exists.
	LatestWeightBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.NullDecimal, error)

	// ListSessionIDs returns the ids of sessions started in [from, to].
	ListSessionIDs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)

	// ListSessionStartTimes returns the start times of sessions started in
	// [from, to].
	ListSessionStartTimes(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]time.Time, error)

	// ListExerciseSetSamples returns set weights for the named exercise
	// restricted to the given sessions, ascending by completed_at.
	ListExerciseSetSamples(ctx context.Context, sessionIDs []uuid.UUID, exerciseName string) ([]Sample, error)
}
