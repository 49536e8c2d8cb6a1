package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/application/usecase/plan"
	"github.com/fittrack/backend/internal/domain/entity"
)

// PlannedExerciseRequest is one exercise inside a training day payload.
// ID may be a catalog uuid or a temporary client-side id; anything that is
// not a uuid is treated as temporary and resolved by name.
type PlannedExerciseRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// TrainingDayRequest is one training day inside a plan payload.
type TrainingDayRequest struct {
	DayNumber         int                      `json:"day_number"`
	Title             string                   `json:"title"`
	EstimatedDuration *int                     `json:"estimated_duration"`
	Exercises         []PlannedExerciseRequest `json:"exercises"`
}

// CreatePlanRequest represents the request body for creating a plan.
type CreatePlanRequest struct {
	Name         string               `json:"name"`
	TrainingDays []TrainingDayRequest `json:"trainingDays"`
}

// UpdatePlanRequest represents the request body for replacing a plan.
type UpdatePlanRequest struct {
	Name         string               `json:"name"`
	TrainingDays []TrainingDayRequest `json:"trainingDays"`
}

// UpdateDayRequest represents the request body for updating a single day.
type UpdateDayRequest struct {
	Title             string                   `json:"title"`
	EstimatedDuration *int                     `json:"estimated_duration"`
	Exercises         []PlannedExerciseRequest `json:"exercises"`
}

// CreatePlanResponse represents the response for the plan creation API.
type CreatePlanResponse struct {
	Success bool   `json:"success"`
	PlanID  string `json:"plan_id"`
}

// PlannedExerciseResponse is one scheduled exercise in a plan response.
type PlannedExerciseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// TrainingDayResponse is one training day in a plan response.
type TrainingDayResponse struct {
	ID                string                    `json:"id"`
	DayNumber         int                       `json:"day_number"`
	Title             string                    `json:"title"`
	EstimatedDuration *int                      `json:"estimated_duration"`
	Exercises         []PlannedExerciseResponse `json:"exercises"`
}

// PlanResponse represents one full plan in API responses.
type PlanResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	StartDate    string                `json:"start_date"`
	CreatedAt    string                `json:"created_at"`
	TrainingDays []TrainingDayResponse `json:"trainingDays"`
}

// PlanSummaryResponse represents one plan in the listing API.
type PlanSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToTrainingDayInputs converts day payloads to usecase inputs. Exercise ids
// that do not parse as uuids become uuid.Nil, marking them for resolution by
// name.
func ToTrainingDayInputs(days []TrainingDayRequest) []plan.TrainingDayInput {
	inputs := make([]plan.TrainingDayInput, len(days))
	for i, day := range days {
		inputs[i] = plan.TrainingDayInput{
			DayNumber:         day.DayNumber,
			Title:             day.Title,
			EstimatedDuration: day.EstimatedDuration,
			Exercises:         ToPlannedExerciseInputs(day.Exercises),
		}
	}
	return inputs
}

// ToPlannedExerciseInputs converts exercise payloads to usecase inputs.
func ToPlannedExerciseInputs(exercises []PlannedExerciseRequest) []plan.PlannedExerciseInput {
	inputs := make([]plan.PlannedExerciseInput, len(exercises))
	for i, exercise := range exercises {
		exerciseID, err := uuid.Parse(exercise.ID)
		if err != nil {
			exerciseID = uuid.Nil
		}
		inputs[i] = plan.PlannedExerciseInput{
			ExerciseID: exerciseID,
			Name:       exercise.Name,
			Sets:       exercise.Sets,
			Reps:       exercise.Reps,
		}
	}
	return inputs
}

// ToPlanResponse converts a GetPlanOutput to PlanResponse DTO.
func ToPlanResponse(output *plan.GetPlanOutput) PlanResponse {
	days := make([]TrainingDayResponse, len(output.Days))
	for i, day := range output.Days {
		exercises := make([]PlannedExerciseResponse, len(day.Exercises))
		for j, exercise := range day.Exercises {
			exercises[j] = PlannedExerciseResponse{
				ID:   exercise.ExerciseID.String(),
				Name: exercise.Name,
				Sets: exercise.SetCount,
				Reps: formatRepRange(exercise.RepMin, exercise.RepMax),
			}
		}
		days[i] = TrainingDayResponse{
			ID:                day.ID.String(),
			DayNumber:         day.DayNumber,
			Title:             day.Title,
			EstimatedDuration: day.EstimatedDuration,
			Exercises:         exercises,
		}
	}

	return PlanResponse{
		ID:           output.Plan.ID.String(),
		Name:         output.Plan.Name,
		StartDate:    output.Plan.StartDate.Format("2006-01-02"),
		CreatedAt:    output.Plan.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		TrainingDays: days,
	}
}

func formatRepRange(repMin, repMax int) string {
	return fmt.Sprintf("%d-%d", repMin, repMax)
}

// ToPlanSummaryResponses converts plan entities to listing DTOs.
func ToPlanSummaryResponses(plans []entity.TrainingPlan) []PlanSummaryResponse {
	responses := make([]PlanSummaryResponse, len(plans))
	for i, p := range plans {
		responses[i] = PlanSummaryResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return responses
}
