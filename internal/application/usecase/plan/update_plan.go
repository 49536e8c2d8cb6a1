package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// UpdatePlanInput represents the input for updating a training plan. Days
// present in TrainingDays are updated or created; days absent from it are
// deleted.
type UpdatePlanInput struct {
	UserID       uuid.UUID
	PlanID       uuid.UUID
	Name         string
	TrainingDays []TrainingDayInput
}

// UpdatePlanUseCase handles replacing a training plan's name and days.
type UpdatePlanUseCase struct {
	planRepo PlanRepository
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase instance.
func NewUpdatePlanUseCase(planRepo PlanRepository) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute validates and applies the plan update.
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, input UpdatePlanInput) error {
	if input.Name == "" {
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanNameRequired,
			"plan name is required",
			domainerror.ErrPlanNameRequired,
		)
	}

	days, err := buildDays(input.TrainingDays)
	if err != nil {
		return err
	}

	plan := entity.TrainingPlan{
		ID:     input.PlanID,
		UserID: input.UserID,
		Name:   input.Name,
	}

	if err := uc.planRepo.UpdatePlan(ctx, input.UserID, plan, days); err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				"plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to update plan",
			err,
		)
	}

	return nil
}
