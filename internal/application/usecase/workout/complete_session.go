package workout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// CompleteSessionInput represents the input for completing a session.
type CompleteSessionInput struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

// CompleteSessionOutput represents the output of completing a session.
type CompleteSessionOutput struct {
	Session entity.Session
}

// CompleteSessionUseCase handles closing a session: it stores the elapsed
// duration and aggregates the session's sets into a summary row.
type CompleteSessionUseCase struct {
	workoutRepo WorkoutRepository
	now         func() time.Time
}

// NewCompleteSessionUseCase creates a new CompleteSessionUseCase instance.
// now is the completion clock; nil means time.Now.
func NewCompleteSessionUseCase(workoutRepo WorkoutRepository, now func() time.Time) *CompleteSessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &CompleteSessionUseCase{
		workoutRepo: workoutRepo,
		now:         now,
	}
}

// Execute completes the session. A failed summary write does not fail the
// completion; the session history then shows the session without highlights.
func (uc *CompleteSessionUseCase) Execute(
	ctx context.Context,
	input CompleteSessionInput,
) (*CompleteSessionOutput, error) {
	session, err := uc.workoutRepo.GetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, domainerror.NewWorkoutError(
				domainerror.ErrCodeSessionNotFound,
				"session not found",
				domainerror.ErrSessionNotFound,
			)
		}
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeWorkoutInternalError,
			"failed to get session",
			err,
		)
	}
	if session.EndTime != nil {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeSessionAlreadyCompleted,
			"session already completed",
			domainerror.ErrSessionAlreadyCompleted,
		)
	}

	endTime := uc.now()
	durationSeconds := int(endTime.Sub(session.StartTime).Seconds())

	updated, err := uc.workoutRepo.CompleteSession(ctx, input.UserID, input.SessionID, endTime, durationSeconds)
	if err != nil {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeWorkoutInternalError,
			"failed to complete session",
			err,
		)
	}

	if err := uc.writeSummary(ctx, *updated); err != nil {
		slog.WarnContext(ctx, "could not create session summary",
			slog.String("session_id", input.SessionID.String()),
			slog.String("error", err.Error()))
	}

	return &CompleteSessionOutput{Session: *updated}, nil
}

// writeSummary aggregates the session's sets. A session with no recorded
// sets gets no summary row.
func (uc *CompleteSessionUseCase) writeSummary(ctx context.Context, session entity.Session) error {
	sets, err := uc.workoutRepo.ListSetsWithExerciseNames(ctx, session.ID)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return nil
	}

	return uc.workoutRepo.SaveSummary(ctx, summarize(session, sets))
}

// summarize folds a session's sets into the summary row the workout history
// reads: totals, the heaviest weight, the distinct exercise count, and the
// top set.
func summarize(session entity.Session, sets []SetWithExercise) entity.SessionSummary {
	summary := entity.SessionSummary{
		SessionID: session.ID,
		UserID:    session.UserID,
		TotalSets: len(sets),
	}

	distinct := make(map[uuid.UUID]struct{})
	top := sets[0]
	for _, set := range sets {
		summary.TotalReps += set.Reps
		summary.TotalVolume = summary.TotalVolume.Add(set.Weight.Mul(decimalFromInt(set.Reps)))
		if set.Weight.GreaterThan(summary.MaxWeightLifted) {
			summary.MaxWeightLifted = set.Weight
		}
		if set.Weight.GreaterThan(top.Weight) {
			top = set
		}
		distinct[set.ExerciseID] = struct{}{}
	}

	summary.TotalDistinctExercises = len(distinct)
	summary.TopExerciseName = top.ExerciseName
	summary.TopExerciseWeight = top.Weight
	summary.TopExerciseReps = top.Reps
	return summary
}
