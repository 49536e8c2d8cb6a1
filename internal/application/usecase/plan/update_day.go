package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// UpdateDayInput represents the input for updating one training day.
type UpdateDayInput struct {
	UserID            uuid.UUID
	DayID             uuid.UUID
	Title             string
	EstimatedDuration *int
	Exercises         []PlannedExerciseInput
}

// UpdateDayUseCase handles updating a single training day and its planned
// exercises. Exercises without a catalog id are resolved by name, creating a
// catalog entry when none exists.
type UpdateDayUseCase struct {
	planRepo PlanRepository
}

// NewUpdateDayUseCase creates a new UpdateDayUseCase instance.
func NewUpdateDayUseCase(planRepo PlanRepository) *UpdateDayUseCase {
	return &UpdateDayUseCase{
		planRepo: planRepo,
	}
}

// Execute resolves the day's exercises and replaces the day's contents.
func (uc *UpdateDayUseCase) Execute(ctx context.Context, input UpdateDayInput) error {
	exercises := make([]entity.PlannedExercise, 0, len(input.Exercises))
	for _, exerciseInput := range input.Exercises {
		exerciseID := exerciseInput.ExerciseID
		if exerciseID == uuid.Nil {
			resolved, err := uc.resolveExercise(ctx, exerciseInput.Name)
			if err != nil {
				return err
			}
			exerciseID = resolved
		}

		repMin, repMax := ParseRepRange(exerciseInput.Reps)
		exercises = append(exercises, entity.PlannedExercise{
			ID:         uuid.New(),
			ExerciseID: exerciseID,
			Name:       exerciseInput.Name,
			SetCount:   exerciseInput.Sets,
			RepMin:     repMin,
			RepMax:     repMax,
		})
	}

	day := entity.TrainingDay{
		ID:                input.DayID,
		Title:             input.Title,
		EstimatedDuration: input.EstimatedDuration,
		Exercises:         exercises,
	}

	if err := uc.planRepo.UpdateDay(ctx, input.UserID, day); err != nil {
		if errors.Is(err, domainerror.ErrTrainingDayNotFound) {
			return domainerror.NewPlanError(
				domainerror.ErrCodeTrainingDayNotFound,
				"training day not found",
				domainerror.ErrTrainingDayNotFound,
			)
		}
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to update training day",
			err,
		)
	}

	return nil
}

// resolveExercise finds the catalog exercise by name, creating a default
// entry for user-added exercises that are not in the catalog yet.
func (uc *UpdateDayUseCase) resolveExercise(ctx context.Context, name string) (uuid.UUID, error) {
	existingID, found, err := uc.planRepo.FindExerciseIDByName(ctx, name)
	if err != nil {
		return uuid.Nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to resolve exercise",
			err,
		)
	}
	if found {
		return existingID, nil
	}

	exercise := entity.Exercise{
		ID:            uuid.New(),
		Name:          name,
		Type:          "other",
		Description:   "ユーザーが追加した種目: " + name,
		TargetMuscles: []string{"その他"},
		Difficulty:    "beginner",
		Equipment:     "other",
	}
	if err := uc.planRepo.CreateExercise(ctx, exercise); err != nil {
		return uuid.Nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to create exercise",
			err,
		)
	}
	return exercise.ID, nil
}
