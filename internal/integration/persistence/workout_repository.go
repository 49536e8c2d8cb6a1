package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fittrack/backend/internal/application/usecase/workout"
	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// workoutRepository implements the workout.WorkoutRepository interface.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository instance.
func NewWorkoutRepository(db *gorm.DB) workout.WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// CreateSession inserts the session and links it to its training day.
func (r *workoutRepository) CreateSession(
	ctx context.Context,
	session entity.Session,
	trainingDayID uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessionModel := model.SessionFromEntity(&session)
		if err := tx.Create(sessionModel).Error; err != nil {
			return err
		}
		link := model.SessionTrainingDayModel{
			SessionID:     session.ID,
			TrainingDayID: trainingDayID,
		}
		return tx.Create(&link).Error
	})
}

// GetSession returns the user's session.
func (r *workoutRepository) GetSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (*entity.Session, error) {
	var sessionModel model.SessionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, result.Error
	}
	return sessionModel.ToEntity(), nil
}

// CompleteSession sets the session's end time and duration and returns the
// updated row.
func (r *workoutRepository) CompleteSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	endTime time.Time,
	durationSeconds int,
) (*entity.Session, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{
			"end_time": endTime,
			"duration": durationSeconds,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrSessionNotFound
	}

	var sessionModel model.SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&sessionModel).Error; err != nil {
		return nil, err
	}
	return sessionModel.ToEntity(), nil
}

// CreateSet inserts one exercise set.
func (r *workoutRepository) CreateSet(ctx context.Context, set entity.ExerciseSet) error {
	setModel := model.ExerciseSetFromEntity(&set)
	return r.db.WithContext(ctx).Create(setModel).Error
}

// ListSetsWithExerciseNames returns the session's sets joined to their
// exercise names, ascending by completion time.
func (r *workoutRepository) ListSetsWithExerciseNames(
	ctx context.Context,
	sessionID uuid.UUID,
) ([]workout.SetWithExercise, error) {
	var rows []struct {
		ID           uuid.UUID
		SessionID    uuid.UUID
		UserID       uuid.UUID
		ExerciseID   uuid.UUID
		SetNumber    int
		Weight       decimal.Decimal
		Reps         int
		CompletedAt  time.Time
		ExerciseName string
	}
	result := r.db.WithContext(ctx).
		Table("exercise_sets").
		Select("exercise_sets.*, exercises.name AS exercise_name").
		Joins("JOIN exercises ON exercises.id = exercise_sets.exercise_id").
		Where("exercise_sets.session_id = ?", sessionID).
		Order("exercise_sets.completed_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	sets := make([]workout.SetWithExercise, len(rows))
	for i, row := range rows {
		sets[i] = workout.SetWithExercise{
			ExerciseSet: entity.ExerciseSet{
				ID:          row.ID,
				SessionID:   row.SessionID,
				UserID:      row.UserID,
				ExerciseID:  row.ExerciseID,
				SetNumber:   row.SetNumber,
				Weight:      row.Weight,
				Reps:        row.Reps,
				CompletedAt: row.CompletedAt,
			},
			ExerciseName: row.ExerciseName,
		}
	}
	return sets, nil
}

// SaveSummary upserts the session summary.
func (r *workoutRepository) SaveSummary(ctx context.Context, summary entity.SessionSummary) error {
	summaryModel := model.SessionSummaryFromEntity(&summary)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_sets",
				"total_reps",
				"total_volume",
				"max_weight_lifted",
				"total_distinct_exercises",
				"top_exercise_name",
				"top_exercise_weight",
				"top_exercise_reps",
			}),
		}).
		Create(summaryModel).Error
}

// ListSessions returns the user's sessions, newest first.
func (r *workoutRepository) ListSessions(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]entity.Session, error) {
	var sessionModels []model.SessionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]entity.Session, len(sessionModels))
	for i, sessionModel := range sessionModels {
		sessions[i] = *sessionModel.ToEntity()
	}
	return sessions, nil
}

// SummariesBySessionIDs returns summaries keyed by session id; sessions
// without a summary are absent from the map.
func (r *workoutRepository) SummariesBySessionIDs(
	ctx context.Context,
	sessionIDs []uuid.UUID,
) (map[uuid.UUID]entity.SessionSummary, error) {
	summaries := make(map[uuid.UUID]entity.SessionSummary, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return summaries, nil
	}

	var summaryModels []model.SessionSummaryModel
	result := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Find(&summaryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, summaryModel := range summaryModels {
		summaries[summaryModel.SessionID] = *summaryModel.ToEntity()
	}
	return summaries, nil
}
