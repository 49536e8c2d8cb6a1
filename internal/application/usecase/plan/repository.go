// Package plan contains the training plan use cases.
package plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// PlanRepository defines training plan persistence operations. Write
// operations that touch a plan's days run in a single transaction.
type PlanRepository interface {
	// CreatePlan inserts the plan with its days and planned exercises.
	CreatePlan(ctx context.Context, plan entity.TrainingPlan, days []entity.TrainingDay) error

	// GetPlan returns the user's plan with its days ordered by day_number
	// and joined exercise names. Returns domain ErrPlanNotFound when the
	// plan does not exist or belongs to another user.
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.TrainingPlan, []entity.TrainingDay, error)

	// ListPlans returns the user's plans, newest first.
	ListPlans(ctx context.Context, userID uuid.UUID) ([]entity.TrainingPlan, error)

	// UpdatePlan renames the plan and replaces its days: days present in
	// the payload are updated or created, days absent from it are deleted.
	// Returns domain ErrPlanNotFound when the plan does not exist.
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan entity.TrainingPlan, days []entity.TrainingDay) error

	// UpdateDay updates one training day's title and duration and replaces
	// its planned exercises. Returns domain ErrTrainingDayNotFound when the
	// day does not exist.
	UpdateDay(ctx context.Context, userID uuid.UUID, day entity.TrainingDay) error

	// DeletePlan deletes the plan and its days. Returns domain
	// ErrPlanNotFound when the plan does not exist.
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error

	// FindExerciseIDByName returns the id of the catalog exercise with the
	// given name; uuid.Nil and false when none exists.
	FindExerciseIDByName(ctx context.Context, name string) (uuid.UUID, bool, error)

	// CreateExercise inserts a new catalog exercise.
	CreateExercise(ctx context.Context, exercise entity.Exercise) error
}
