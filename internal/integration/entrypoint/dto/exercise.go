package dto

import (
	"github.com/fittrack/backend/internal/application/usecase/exercise"
)

// ExerciseListResponse represents the response for the catalog listing API.
type ExerciseListResponse struct {
	Exercises []exercise.ExerciseItem `json:"exercises"`
	Total     int                     `json:"total"`
}

// ToExerciseListResponse converts a ListExercisesOutput to ExerciseListResponse DTO.
func ToExerciseListResponse(output *exercise.ListExercisesOutput) ExerciseListResponse {
	return ExerciseListResponse{
		Exercises: output.Exercises,
		Total:     output.Total,
	}
}
