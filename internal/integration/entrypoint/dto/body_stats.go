package dto

import (
	"github.com/fittrack/backend/internal/application/usecase/bodystats"
	"github.com/fittrack/backend/internal/application/usecase/progress"
	"github.com/fittrack/backend/internal/domain/entity"
)

// RecordBodyStatsRequest represents the request body for recording a body
// stat. Date is a YYYY-MM-DD calendar day.
type RecordBodyStatsRequest struct {
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
	Date    string   `json:"date"`
}

// BodyStatResponse represents one stored body stat in API responses.
type BodyStatResponse struct {
	ID           string   `json:"id"`
	Weight       float64  `json:"weight"`
	BodyFat      *float64 `json:"body_fat"`
	RecordedDate string   `json:"recorded_date"`
	CreatedAt    string   `json:"created_at"`
}

// RecordBodyStatsResponse represents the response for the record API.
type RecordBodyStatsResponse struct {
	Message string           `json:"message"`
	Data    BodyStatResponse `json:"data"`
}

// BodyStatsHistoryResponse represents the response for the history API.
type BodyStatsHistoryResponse struct {
	History   []BodyStatResponse     `json:"history"`
	Stats     bodystats.HistoryStats `json:"stats"`
	ChartData progress.ChartData     `json:"chartData"`
}

// ToBodyStatResponse converts a domain BodyStat entity to a BodyStatResponse DTO.
func ToBodyStatResponse(stat entity.BodyStat) BodyStatResponse {
	response := BodyStatResponse{
		ID:           stat.ID.String(),
		Weight:       stat.Weight.InexactFloat64(),
		RecordedDate: stat.RecordedAt.Format("2006-01-02"),
		CreatedAt:    stat.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if stat.BodyFatPercentage.Valid {
		bodyFat := stat.BodyFatPercentage.Decimal.InexactFloat64()
		response.BodyFat = &bodyFat
	}
	return response
}

// ToRecordBodyStatsResponse converts a RecordBodyStatOutput to RecordBodyStatsResponse DTO.
func ToRecordBodyStatsResponse(output *bodystats.RecordBodyStatOutput) RecordBodyStatsResponse {
	return RecordBodyStatsResponse{
		Message: "体重データを記録しました",
		Data:    ToBodyStatResponse(output.Stat),
	}
}

// ToBodyStatsHistoryResponse converts a GetHistoryOutput to BodyStatsHistoryResponse DTO.
func ToBodyStatsHistoryResponse(output *bodystats.GetHistoryOutput) BodyStatsHistoryResponse {
	history := make([]BodyStatResponse, len(output.History))
	for i, stat := range output.History {
		history[i] = ToBodyStatResponse(stat)
	}
	return BodyStatsHistoryResponse{
		History:   history,
		Stats:     output.Stats,
		ChartData: output.ChartData,
	}
}
