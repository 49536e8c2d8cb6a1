package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// DeletePlanInput represents the input for deleting a training plan.
type DeletePlanInput struct {
	UserID uuid.UUID
	PlanID uuid.UUID
}

// DeletePlanUseCase handles deleting a training plan with its days.
type DeletePlanUseCase struct {
	planRepo PlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo PlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute deletes the plan.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) error {
	if err := uc.planRepo.DeletePlan(ctx, input.UserID, input.PlanID); err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				"plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to delete plan",
			err,
		)
	}
	return nil
}
