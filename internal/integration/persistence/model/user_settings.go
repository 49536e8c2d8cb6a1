package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database,
// upserted on user_id.
type UserSettingsModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotificationsEnabled bool      `gorm:"default:false"`
	ReminderTime         *string   `gorm:"type:varchar(5)"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		UserID:               m.UserID,
		NotificationsEnabled: m.NotificationsEnabled,
		ReminderTime:         m.ReminderTime,
		UpdatedAt:            m.UpdatedAt,
	}
}

// UserSettingsFromEntity converts a domain UserSettings entity to a UserSettingsModel.
func UserSettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		UserID:               settings.UserID,
		NotificationsEnabled: settings.NotificationsEnabled,
		ReminderTime:         settings.ReminderTime,
		UpdatedAt:            settings.UpdatedAt,
	}
}
