package dto

import (
	"github.com/fittrack/backend/internal/application/usecase/workout"
	"github.com/fittrack/backend/internal/domain/entity"
)

// StartSessionRequest represents the request body for starting a session.
type StartSessionRequest struct {
	DayID string `json:"dayId"`
}

// CompleteSessionRequest represents the request body for completing a session.
type CompleteSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// RecordSetRequest represents the request body for recording a set.
type RecordSetRequest struct {
	SessionID  string  `json:"sessionId"`
	ExerciseID string  `json:"exerciseId"`
	SetNumber  int     `json:"setNumber"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
}

// SessionResponse represents a training session in API responses.
type SessionResponse struct {
	ID        string  `json:"id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Duration  *int    `json:"duration"`
}

// SessionMessageResponse wraps a session with a user-facing message.
type SessionMessageResponse struct {
	Message string          `json:"message"`
	Session SessionResponse `json:"session"`
}

// RecordSetResponse represents the response for the record-set API.
type RecordSetResponse struct {
	Message string          `json:"message"`
	Set     SetItemResponse `json:"set"`
}

// SetItemResponse represents one recorded set in API responses.
type SetItemResponse struct {
	ID          string  `json:"id"`
	SessionID   string  `json:"session_id"`
	ExerciseID  string  `json:"exercise_id"`
	SetNumber   int     `json:"set_number"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	CompletedAt string  `json:"completed_at"`
}

// ToSessionResponse converts a domain Session entity to a SessionResponse DTO.
func ToSessionResponse(session entity.Session) SessionResponse {
	response := SessionResponse{
		ID:        session.ID.String(),
		StartTime: session.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		Duration:  session.Duration,
	}
	if session.EndTime != nil {
		endTime := session.EndTime.Format("2006-01-02T15:04:05Z07:00")
		response.EndTime = &endTime
	}
	return response
}

// ToRecordSetResponse converts a RecordSetOutput to RecordSetResponse DTO.
func ToRecordSetResponse(output *workout.RecordSetOutput) RecordSetResponse {
	return RecordSetResponse{
		Message: "セットを記録しました",
		Set: SetItemResponse{
			ID:          output.Set.ID.String(),
			SessionID:   output.Set.SessionID.String(),
			ExerciseID:  output.Set.ExerciseID.String(),
			SetNumber:   output.Set.SetNumber,
			Weight:      output.Set.Weight.InexactFloat64(),
			Reps:        output.Set.Reps,
			CompletedAt: output.Set.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	}
}
