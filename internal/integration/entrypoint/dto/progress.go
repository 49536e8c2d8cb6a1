package dto

import (
	"github.com/fittrack/backend/internal/application/usecase/progress"
)

// ProgressDataResponse represents the response for the progress chart API.
// Stats is one of WeightStats, StrengthStats, or WorkoutStats; the concrete
// type determines the serialized shape.
type ProgressDataResponse struct {
	ChartData progress.ChartData `json:"chartData"`
	Stats     progress.Stats     `json:"stats"`
}

// ToProgressDataResponse converts a GetProgressDataOutput to ProgressDataResponse DTO.
func ToProgressDataResponse(output *progress.GetProgressDataOutput) ProgressDataResponse {
	return ProgressDataResponse{
		ChartData: output.ChartData,
		Stats:     output.Stats,
	}
}
