package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/home"
	"github.com/fittrack/backend/internal/domain/entity"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// homeRepository implements the home.HomeRepository interface.
type homeRepository struct {
	db *gorm.DB
}

// NewHomeRepository creates a new home repository instance.
func NewHomeRepository(db *gorm.DB) home.HomeRepository {
	return &homeRepository{
		db: db,
	}
}

// ActivePlan returns the user's newest training plan, nil when none exists.
func (r *homeRepository) ActivePlan(ctx context.Context, userID uuid.UUID) (*entity.TrainingPlan, error) {
	var planModel model.TrainingPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// TrainingDayByNumber returns the plan's training day for the given day
// number with its planned exercises, nil when the day has no entry.
func (r *homeRepository) TrainingDayByNumber(
	ctx context.Context,
	planID uuid.UUID,
	dayNumber int,
) (*entity.TrainingDay, error) {
	var dayModel model.TrainingDayModel
	result := r.db.WithContext(ctx).
		Preload("Exercises.Exercise").
		Where("plan_id = ? AND day_number = ?", planID, dayNumber).
		First(&dayModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return dayModel.ToEntity(), nil
}

// CountSessionsBetween counts the user's sessions started in [from, to].
func (r *homeRepository) CountSessionsBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ?", userID).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// BestSetForExercise returns the heaviest set ever recorded for the named
// exercise, preferring the most recent session on ties; nil when no set
// exists.
func (r *homeRepository) BestSetForExercise(
	ctx context.Context,
	userID uuid.UUID,
	exerciseName string,
) (*home.BestSet, error) {
	var rows []struct {
		ExerciseName     string
		Weight           decimal.Decimal
		SessionStartTime time.Time
	}
	result := r.db.WithContext(ctx).
		Table("exercise_sets").
		Select("exercises.name AS exercise_name, exercise_sets.weight, sessions.start_time AS session_start_time").
		Joins("JOIN exercises ON exercises.id = exercise_sets.exercise_id").
		Joins("JOIN sessions ON sessions.id = exercise_sets.session_id").
		Where("exercise_sets.user_id = ?", userID).
		Where("exercises.name = ?", exerciseName).
		Order("exercise_sets.weight DESC").
		Order("sessions.start_time DESC").
		Limit(1).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &home.BestSet{
		ExerciseName:     rows[0].ExerciseName,
		Weight:           rows[0].Weight,
		SessionStartTime: rows[0].SessionStartTime,
	}, nil
}
