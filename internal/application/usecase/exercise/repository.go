package exercise

import (
	"context"

	"github.com/fittrack/backend/internal/domain/entity"
)

// ExerciseFilter narrows the catalog listing. Zero values mean no filter.
type ExerciseFilter struct {
	// Category matches the exercise type exactly.
	Category string
	// Search matches the exercise name case-insensitively as a substring.
	Search string
	Limit  int
	Offset int
}

// ExerciseRepository abstracts the shared exercise catalog.
type ExerciseRepository interface {
	// ListExercises returns one page of the catalog plus the total count of
	// rows matching the filter regardless of pagination.
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]entity.Exercise, int, error)
}
