package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fittrack/backend/internal/application/usecase/bodystats"
	"github.com/fittrack/backend/internal/domain/entity"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// bodyStatsRepository implements the bodystats.BodyStatsRepository interface.
type bodyStatsRepository struct {
	db *gorm.DB
}

// NewBodyStatsRepository creates a new body stats repository instance.
func NewBodyStatsRepository(db *gorm.DB) bodystats.BodyStatsRepository {
	return &bodyStatsRepository{
		db: db,
	}
}

// Upsert inserts the stat or replaces the existing row for the same
// (user_id, recorded_date) day, and returns the stored row.
func (r *bodyStatsRepository) Upsert(ctx context.Context, stat entity.BodyStat) (*entity.BodyStat, error) {
	statModel := model.BodyStatFromEntity(&stat)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recorded_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "body_fat"}),
		}).
		Create(statModel)
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read so the conflict path returns the original row's id and
	// created_at rather than the discarded insert's.
	var stored model.BodyStatModel
	result = r.db.WithContext(ctx).
		Where("user_id = ? AND recorded_date = ?", stat.UserID, statModel.RecordedDate).
		First(&stored)
	if result.Error != nil {
		return nil, result.Error
	}
	return stored.ToEntity(), nil
}

// ListRecent returns the user's most recent stats, descending by recorded
// date, at most limit rows.
func (r *bodyStatsRepository) ListRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]entity.BodyStat, error) {
	var statModels []model.BodyStatModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_date DESC").
		Limit(limit).
		Find(&statModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBodyStatEntities(statModels), nil
}

// ListBetween returns the user's stats recorded in [from, to], descending by
// recorded date. limit 0 means no limit.
func (r *bodyStatsRepository) ListBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	limit int,
) ([]entity.BodyStat, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("recorded_date >= ? AND recorded_date <= ?", from, to).
		Order("recorded_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var statModels []model.BodyStatModel
	result := query.Find(&statModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBodyStatEntities(statModels), nil
}

func toBodyStatEntities(statModels []model.BodyStatModel) []entity.BodyStat {
	stats := make([]entity.BodyStat, len(statModels))
	for i, statModel := range statModels {
		stats[i] = *statModel.ToEntity()
	}
	return stats
}
