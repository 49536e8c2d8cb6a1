package workout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// RecordSetInput represents the input for recording one exercise set.
type RecordSetInput struct {
	UserID     uuid.UUID
	SessionID  uuid.UUID
	ExerciseID uuid.UUID
	SetNumber  int
	Weight     decimal.Decimal
	Reps       int
}

// RecordSetOutput represents the output of recording one exercise set.
type RecordSetOutput struct {
	Set entity.ExerciseSet
}

// RecordSetUseCase handles recording a completed set during a session.
type RecordSetUseCase struct {
	workoutRepo WorkoutRepository
	now         func() time.Time
}

// NewRecordSetUseCase creates a new RecordSetUseCase instance. now is the
// completion timestamp clock; nil means time.Now.
func NewRecordSetUseCase(workoutRepo WorkoutRepository, now func() time.Time) *RecordSetUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordSetUseCase{
		workoutRepo: workoutRepo,
		now:         now,
	}
}

// Execute validates and inserts the set. Sets are append-only.
func (uc *RecordSetUseCase) Execute(
	ctx context.Context,
	input RecordSetInput,
) (*RecordSetOutput, error) {
	if !input.Weight.IsPositive() || input.Reps <= 0 {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeInvalidSetData,
			"weight and reps must be greater than zero",
			domainerror.ErrInvalidSetData,
		)
	}

	set := entity.ExerciseSet{
		ID:          uuid.New(),
		SessionID:   input.SessionID,
		UserID:      input.UserID,
		ExerciseID:  input.ExerciseID,
		SetNumber:   input.SetNumber,
		Weight:      input.Weight,
		Reps:        input.Reps,
		CompletedAt: uc.now(),
	}

	if err := uc.workoutRepo.CreateSet(ctx, set); err != nil {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeWorkoutInternalError,
			"failed to record set",
			err,
		)
	}

	return &RecordSetOutput{Set: set}, nil
}
