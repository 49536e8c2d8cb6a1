// Package workout contains the training session lifecycle use cases.
package workout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// SetWithExercise is one recorded set joined to its catalog exercise name.
type SetWithExercise struct {
	entity.ExerciseSet
	ExerciseName string
}

// WorkoutRepository defines session persistence operations.
type WorkoutRepository interface {
	// CreateSession inserts the session and links it to its training day.
	CreateSession(ctx context.Context, session entity.Session, trainingDayID uuid.UUID) error

	// GetSession returns the user's session. Returns domain
	// ErrSessionNotFound when it does not exist or belongs to another user.
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.Session, error)

	// CompleteSession sets the session's end time and duration and returns
	// the updated row.
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID, endTime time.Time, durationSeconds int) (*entity.Session, error)

	// CreateSet inserts one exercise set.
	CreateSet(ctx context.Context, set entity.ExerciseSet) error

	// ListSetsWithExerciseNames returns the session's sets joined to their
	// exercise names.
	ListSetsWithExerciseNames(ctx context.Context, sessionID uuid.UUID) ([]SetWithExercise, error)

	// SaveSummary upserts the session summary.
	SaveSummary(ctx context.Context, summary entity.SessionSummary) error

	// ListSessions returns the user's sessions, newest first.
	ListSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Session, error)

	// SummariesBySessionIDs returns summaries keyed by session id; sessions
	// without a summary are absent from the map.
	SummariesBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID]entity.SessionSummary, error)
}
