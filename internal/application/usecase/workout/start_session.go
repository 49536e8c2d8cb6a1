package workout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// StartSessionInput represents the input for starting a training session.
type StartSessionInput struct {
	UserID        uuid.UUID
	TrainingDayID uuid.UUID
}

// StartSessionOutput represents the output of starting a training session.
type StartSessionOutput struct {
	Session entity.Session
}

// StartSessionUseCase handles opening a new training session.
type StartSessionUseCase struct {
	workoutRepo WorkoutRepository
	now         func() time.Time
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance. now is
// the session clock; nil means time.Now.
func NewStartSessionUseCase(workoutRepo WorkoutRepository, now func() time.Time) *StartSessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &StartSessionUseCase{
		workoutRepo: workoutRepo,
		now:         now,
	}
}

// Execute creates a session with only the start time set and links it to the
// training day being performed.
func (uc *StartSessionUseCase) Execute(
	ctx context.Context,
	input StartSessionInput,
) (*StartSessionOutput, error) {
	session := entity.Session{
		ID:        uuid.New(),
		UserID:    input.UserID,
		StartTime: uc.now(),
	}

	if err := uc.workoutRepo.CreateSession(ctx, session, input.TrainingDayID); err != nil {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeWorkoutInternalError,
			"failed to start session",
			err,
		)
	}

	return &StartSessionOutput{Session: session}, nil
}
