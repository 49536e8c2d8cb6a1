package plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// ListPlansInput represents the input for listing a user's training plans.
type ListPlansInput struct {
	UserID uuid.UUID
}

// ListPlansOutput represents the output of listing training plans.
type ListPlansOutput struct {
	Plans []entity.TrainingPlan
}

// ListPlansUseCase handles listing a user's training plans.
type ListPlansUseCase struct {
	planRepo PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute returns the user's plans, newest first. No plans is an empty list,
// not an error.
func (uc *ListPlansUseCase) Execute(
	ctx context.Context,
	input ListPlansInput,
) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.ListPlans(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanInternalError,
			"failed to list plans",
			err,
		)
	}

	return &ListPlansOutput{Plans: plans}, nil
}
