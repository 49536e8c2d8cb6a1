// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/progress"
)

// progressRepository implements the progress.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) progress.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// ListBodyStatSamples returns the user's body-stat weights recorded in
// [from, to], ascending by recorded date.
func (r *progressRepository) ListBodyStatSamples(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]progress.Sample, error) {
	var rows []struct {
		RecordedDate time.Time
		Weight       decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Table("body_stats").
		Select("recorded_date, weight").
		Where("user_id = ?", userID).
		Where("recorded_date >= ? AND recorded_date <= ?", from, to).
		Order("recorded_date ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	samples := make([]progress.Sample, len(rows))
	for i, row := range rows {
		samples[i] = progress.Sample{
			At:    row.RecordedDate,
			Value: decimal.NewNullDecimal(row.Weight),
		}
	}
	return samples, nil
}

// LatestWeightBetween returns the most recent body-stat weight recorded in
// [from, to]; invalid when no row exists.
func (r *progressRepository) LatestWeightBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (decimal.NullDecimal, error) {
	var row struct {
		Weight decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Table("body_stats").
		Select("weight").
		Where("user_id = ?", userID).
		Where("recorded_date >= ? AND recorded_date <= ?", from, to).
		Order("recorded_date DESC").
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.NullDecimal{}, nil
		}
		return decimal.NullDecimal{}, result.Error
	}
	return decimal.NewNullDecimal(row.Weight), nil
}

// ListSessionIDs returns the ids of the user's sessions started in [from, to].
func (r *progressRepository) ListSessionIDs(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Table("sessions").
		Where("user_id = ?", userID).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time ASC").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// ListSessionStartTimes returns the start times of the user's sessions
// started in [from, to].
func (r *progressRepository) ListSessionStartTimes(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]time.Time, error) {
	var startTimes []time.Time
	result := r.db.WithContext(ctx).
		Table("sessions").
		Where("user_id = ?", userID).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time ASC").
		Pluck("start_time", &startTimes)
	if result.Error != nil {
		return nil, result.Error
	}
	return startTimes, nil
}

// ListExerciseSetSamples returns set weights for the named exercise
// restricted to the given sessions, ascending by completion time.
func (r *progressRepository) ListExerciseSetSamples(
	ctx context.Context,
	sessionIDs []uuid.UUID,
	exerciseName string,
) ([]progress.Sample, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	var rows []struct {
		CompletedAt time.Time
		Weight      decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Table("exercise_sets").
		Select("exercise_sets.completed_at, exercise_sets.weight").
		Joins("JOIN exercises ON exercises.id = exercise_sets.exercise_id").
		Where("exercise_sets.session_id IN ?", sessionIDs).
		Where("exercises.name = ?", exerciseName).
		Order("exercise_sets.completed_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	samples := make([]progress.Sample, len(rows))
	for i, row := range rows {
		samples[i] = progress.Sample{
			At:    row.CompletedAt,
			Value: decimal.NewNullDecimal(row.Weight),
		}
	}
	return samples, nil
}
