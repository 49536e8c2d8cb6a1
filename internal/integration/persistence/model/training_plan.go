package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// TrainingPlanModel represents the user_training_plans table in the database.
type TrainingPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TrainingPlanModel.
func (TrainingPlanModel) TableName() string {
	return "user_training_plans"
}

// ToEntity converts a TrainingPlanModel to a domain TrainingPlan entity.
func (m *TrainingPlanModel) ToEntity() *entity.TrainingPlan {
	return &entity.TrainingPlan{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		StartDate: m.StartDate,
		CreatedAt: m.CreatedAt,
	}
}

// TrainingPlanFromEntity converts a domain TrainingPlan entity to a TrainingPlanModel.
func TrainingPlanFromEntity(plan *entity.TrainingPlan) *TrainingPlanModel {
	return &TrainingPlanModel{
		ID:        plan.ID,
		UserID:    plan.UserID,
		Name:      plan.Name,
		StartDate: plan.StartDate,
		CreatedAt: plan.CreatedAt,
	}
}

// TrainingDayModel represents the user_training_days table in the database.
// DayNumber follows ISO numbering: Monday=1 .. Sunday=7.
type TrainingDayModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID            uuid.UUID `gorm:"type:uuid;not null;index"`
	DayNumber         int       `gorm:"not null"`
	Title             string    `gorm:"type:varchar(100);not null"`
	EstimatedDuration *int      `gorm:"type:integer"`

	Exercises []DayExerciseModel `gorm:"foreignKey:TrainingDayID;references:ID"`
}

// TableName returns the table name for the TrainingDayModel.
func (TrainingDayModel) TableName() string {
	return "user_training_days"
}

// DayExerciseModel represents the user_day_exercises table in the database.
type DayExerciseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrainingDayID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExerciseID    uuid.UUID `gorm:"type:uuid;not null"`
	SetCount      int       `gorm:"not null"`
	RepMin        int       `gorm:"not null"`
	RepMax        int       `gorm:"not null"`

	Exercise *ExerciseModel `gorm:"foreignKey:ExerciseID;references:ID"`
}

// TableName returns the table name for the DayExerciseModel.
func (DayExerciseModel) TableName() string {
	return "user_day_exercises"
}

// ToEntity converts a TrainingDayModel with its exercises to a domain
// TrainingDay entity. Exercise names come from the preloaded catalog rows.
func (m *TrainingDayModel) ToEntity() *entity.TrainingDay {
	exercises := make([]entity.PlannedExercise, len(m.Exercises))
	for i, dayExercise := range m.Exercises {
		name := ""
		if dayExercise.Exercise != nil {
			name = dayExercise.Exercise.Name
		}
		exercises[i] = entity.PlannedExercise{
			ID:         dayExercise.ID,
			ExerciseID: dayExercise.ExerciseID,
			Name:       name,
			SetCount:   dayExercise.SetCount,
			RepMin:     dayExercise.RepMin,
			RepMax:     dayExercise.RepMax,
		}
	}

	return &entity.TrainingDay{
		ID:                m.ID,
		PlanID:            m.PlanID,
		DayNumber:         m.DayNumber,
		Title:             m.Title,
		EstimatedDuration: m.EstimatedDuration,
		Exercises:         exercises,
	}
}

// TrainingDayFromEntity converts a domain TrainingDay entity to a
// TrainingDayModel with its exercise rows.
func TrainingDayFromEntity(day *entity.TrainingDay) *TrainingDayModel {
	exercises := make([]DayExerciseModel, len(day.Exercises))
	for i, exercise := range day.Exercises {
		exercises[i] = DayExerciseModel{
			ID:            exercise.ID,
			TrainingDayID: day.ID,
			ExerciseID:    exercise.ExerciseID,
			SetCount:      exercise.SetCount,
			RepMin:        exercise.RepMin,
			RepMax:        exercise.RepMax,
		}
	}

	return &TrainingDayModel{
		ID:                day.ID,
		PlanID:            day.PlanID,
		DayNumber:         day.DayNumber,
		Title:             day.Title,
		EstimatedDuration: day.EstimatedDuration,
		Exercises:         exercises,
	}
}
