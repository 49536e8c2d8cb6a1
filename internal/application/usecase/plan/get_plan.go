package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// GetPlanInput represents the input for reading one training plan.
type GetPlanInput struct {
	UserID uuid.UUID
	PlanID uuid.UUID
}

// GetPlanOutput represents the output of reading one training plan.
type GetPlanOutput struct {
	Plan entity.TrainingPlan
	Days []entity.TrainingDay
}

// GetPlanUseCase handles reading a training plan with its days.
type GetPlanUseCase struct {
	planRepo PlanRepository
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(planRepo PlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
	}
}

// Execute returns the plan with its days ordered by day number.
func (uc *GetPlanUseCase) Execute(
	ctx context.Context,
	input GetPlanInput,
) (*GetPlanOutput, error) {
	plan, days, err := uc.planRepo.GetPlan(ctx, input.UserID, input.PlanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				"plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to get plan",
			err,
		)
	}

	return &GetPlanOutput{Plan: *plan, Days: days}, nil
}
