package plan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// PlannedExerciseInput is one exercise inside a training day payload.
// ExerciseID is uuid.Nil when the client sent a temporary id; the exercise is
// then resolved or created by name.
type PlannedExerciseInput struct {
	ExerciseID uuid.UUID
	Name       string
	Sets       int
	Reps       string
}

// TrainingDayInput is one training day inside a plan payload.
type TrainingDayInput struct {
	DayNumber         int
	Title             string
	EstimatedDuration *int
	Exercises         []PlannedExerciseInput
}

// CreatePlanInput represents the input for creating a training plan.
type CreatePlanInput struct {
	UserID       uuid.UUID
	Name         string
	TrainingDays []TrainingDayInput
}

// CreatePlanOutput represents the output of creating a training plan.
type CreatePlanOutput struct {
	PlanID uuid.UUID
}

// CreatePlanUseCase handles creating a training plan with its days and
// planned exercises.
type CreatePlanUseCase struct {
	planRepo PlanRepository
	now      func() time.Time
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance. now is the
// clock used for the plan start date; nil means time.Now.
func NewCreatePlanUseCase(planRepo PlanRepository, now func() time.Time) *CreatePlanUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreatePlanUseCase{
		planRepo: planRepo,
		now:      now,
	}
}

// Execute validates and persists the plan. The start date is today.
func (uc *CreatePlanUseCase) Execute(
	ctx context.Context,
	input CreatePlanInput,
) (*CreatePlanOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNameRequired,
			"plan name is required",
			domainerror.ErrPlanNameRequired,
		)
	}

	days, err := buildDays(input.TrainingDays)
	if err != nil {
		return nil, err
	}

	plan := entity.TrainingPlan{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		StartDate: uc.now(),
	}

	if err := uc.planRepo.CreatePlan(ctx, plan, days); err != nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to create plan",
			err,
		)
	}

	return &CreatePlanOutput{PlanID: plan.ID}, nil
}

// buildDays converts day payloads into entities, parsing rep ranges and
// validating day numbers.
func buildDays(inputs []TrainingDayInput) ([]entity.TrainingDay, error) {
	days := make([]entity.TrainingDay, 0, len(inputs))
	for _, dayInput := range inputs {
		if dayInput.DayNumber < 1 || dayInput.DayNumber > 7 {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeInvalidDayNumber,
				"day number must be between 1 and 7",
				domainerror.ErrInvalidDayNumber,
			)
		}

		exercises := make([]entity.PlannedExercise, 0, len(dayInput.Exercises))
		for _, exerciseInput := range dayInput.Exercises {
			repMin, repMax := ParseRepRange(exerciseInput.Reps)
			exercises = append(exercises, entity.PlannedExercise{
				ID:         uuid.New(),
				ExerciseID: exerciseInput.ExerciseID,
				Name:       exerciseInput.Name,
				SetCount:   exerciseInput.Sets,
				RepMin:     repMin,
				RepMax:     repMax,
			})
		}

		days = append(days, entity.TrainingDay{
			ID:                uuid.New(),
			DayNumber:         dayInput.DayNumber,
			Title:             dayInput.Title,
			EstimatedDuration: dayInput.EstimatedDuration,
			Exercises:         exercises,
		})
	}
	return days, nil
}
