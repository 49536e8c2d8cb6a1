package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
)

// SessionModel represents the sessions table in the database. Duration is
// stored in seconds once the session completes.
type SessionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time `gorm:"type:timestamp"`
	Duration  *int       `gorm:"type:integer"`
}

// TableName returns the table name for the SessionModel.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts a SessionModel to a domain Session entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.Duration,
	}
}

// SessionFromEntity converts a domain Session entity to a SessionModel.
func SessionFromEntity(session *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Duration:  session.Duration,
	}
}

// SessionTrainingDayModel represents the session_training_days link table.
type SessionTrainingDayModel struct {
	SessionID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrainingDayID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for the SessionTrainingDayModel.
func (SessionTrainingDayModel) TableName() string {
	return "session_training_days"
}

// ExerciseSetModel represents the exercise_sets table in the database.
// Sets are append-only.
type ExerciseSetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SessionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExerciseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SetNumber   int             `gorm:"not null"`
	Weight      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Reps        int             `gorm:"not null"`
	CompletedAt time.Time       `gorm:"not null"`

	Exercise *ExerciseModel `gorm:"foreignKey:ExerciseID;references:ID"`
}

// TableName returns the table name for the ExerciseSetModel.
func (ExerciseSetModel) TableName() string {
	return "exercise_sets"
}

// ToEntity converts an ExerciseSetModel to a domain ExerciseSet entity.
func (m *ExerciseSetModel) ToEntity() *entity.ExerciseSet {
	return &entity.ExerciseSet{
		ID:          m.ID,
		SessionID:   m.SessionID,
		UserID:      m.UserID,
		ExerciseID:  m.ExerciseID,
		SetNumber:   m.SetNumber,
		Weight:      m.Weight,
		Reps:        m.Reps,
		CompletedAt: m.CompletedAt,
	}
}

// ExerciseSetFromEntity converts a domain ExerciseSet entity to an ExerciseSetModel.
func ExerciseSetFromEntity(set *entity.ExerciseSet) *ExerciseSetModel {
	return &ExerciseSetModel{
		ID:          set.ID,
		SessionID:   set.SessionID,
		UserID:      set.UserID,
		ExerciseID:  set.ExerciseID,
		SetNumber:   set.SetNumber,
		Weight:      set.Weight,
		Reps:        set.Reps,
		CompletedAt: set.CompletedAt,
	}
}

// SessionSummaryModel represents the session_summaries table in the
// database, one row per completed session with recorded sets.
type SessionSummaryModel struct {
	SessionID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalSets              int             `gorm:"not null"`
	TotalReps              int             `gorm:"not null"`
	TotalVolume            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxWeightLifted        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TotalDistinctExercises int             `gorm:"not null"`
	TopExerciseName        string          `gorm:"type:varchar(100)"`
	TopExerciseWeight      decimal.Decimal `gorm:"type:decimal(5,2)"`
	TopExerciseReps        int             `gorm:"type:integer"`
}

// TableName returns the table name for the SessionSummaryModel.
func (SessionSummaryModel) TableName() string {
	return "session_summaries"
}

// ToEntity converts a SessionSummaryModel to a domain SessionSummary entity.
func (m *SessionSummaryModel) ToEntity() *entity.SessionSummary {
	return &entity.SessionSummary{
		SessionID:              m.SessionID,
		UserID:                 m.UserID,
		TotalSets:              m.TotalSets,
		TotalReps:              m.TotalReps,
		TotalVolume:            m.TotalVolume,
		MaxWeightLifted:        m.MaxWeightLifted,
		TotalDistinctExercises: m.TotalDistinctExercises,
		TopExerciseName:        m.TopExerciseName,
		TopExerciseWeight:      m.TopExerciseWeight,
		TopExerciseReps:        m.TopExerciseReps,
	}
}

// SessionSummaryFromEntity converts a domain SessionSummary entity to a SessionSummaryModel.
func SessionSummaryFromEntity(summary *entity.SessionSummary) *SessionSummaryModel {
	return &SessionSummaryModel{
		SessionID:              summary.SessionID,
		UserID:                 summary.UserID,
		TotalSets:              summary.TotalSets,
		TotalReps:              summary.TotalReps,
		TotalVolume:            summary.TotalVolume,
		MaxWeightLifted:        summary.MaxWeightLifted,
		TotalDistinctExercises: summary.TotalDistinctExercises,
		TopExerciseName:        summary.TopExerciseName,
		TopExerciseWeight:      summary.TopExerciseWeight,
		TopExerciseReps:        summary.TopExerciseReps,
	}
}
