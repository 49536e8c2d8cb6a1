package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fittrack/backend/internal/application/usecase/settings"
	"github.com/fittrack/backend/internal/domain/entity"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// settingsRepository implements the settings.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) settings.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// UpsertSettings inserts or updates the user's settings row, keyed by user
// id, and returns the stored state.
func (r *settingsRepository) UpsertSettings(
	ctx context.Context,
	userSettings entity.UserSettings,
) (*entity.UserSettings, error) {
	settingsModel := model.UserSettingsFromEntity(&userSettings)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notifications_enabled", "reminder_time", "updated_at"}),
		}).
		Create(settingsModel)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.UserSettingsModel
	result = r.db.WithContext(ctx).Where("user_id = ?", userSettings.UserID).First(&stored)
	if result.Error != nil {
		return nil, result.Error
	}
	return stored.ToEntity(), nil
}
