package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// UpdateNotificationSettingsInput represents the input for the notification
// settings upsert. ReminderTime is an "HH:MM" wall-clock string, nil to leave
// the reminder unset.
type UpdateNotificationSettingsInput struct {
	UserID       uuid.UUID
	Enabled      bool
	ReminderTime *string
}

// UpdateNotificationSettingsOutput represents the output of the upsert.
type UpdateNotificationSettingsOutput struct {
	Settings entity.UserSettings
}

// UpdateNotificationSettingsUseCase handles the notification settings upsert.
type UpdateNotificationSettingsUseCase struct {
	settingsRepo SettingsRepository
	now          func() time.Time
}

// NewUpdateNotificationSettingsUseCase creates a new
// UpdateNotificationSettingsUseCase instance. now is the update timestamp
// clock; nil means time.Now.
func NewUpdateNotificationSettingsUseCase(settingsRepo SettingsRepository, now func() time.Time) *UpdateNotificationSettingsUseCase {
	if now == nil {
		now = time.Now
	}
	return &UpdateNotificationSettingsUseCase{
		settingsRepo: settingsRepo,
		now:          now,
	}
}

// Execute validates and upserts the user's notification settings.
func (uc *UpdateNotificationSettingsUseCase) Execute(
	ctx context.Context,
	input UpdateNotificationSettingsInput,
) (*UpdateNotificationSettingsOutput, error) {
	if input.ReminderTime != nil {
		if _, err := time.Parse("15:04", *input.ReminderTime); err != nil {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidReminderTime,
				"reminder time must be in HH:MM format",
				domainerror.ErrInvalidReminderTime,
			)
		}
	}

	stored, err := uc.settingsRepo.UpsertSettings(ctx, entity.UserSettings{
		UserID:               input.UserID,
		NotificationsEnabled: input.Enabled,
		ReminderTime:         input.ReminderTime,
		UpdatedAt:            uc.now(),
	})
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to save notification settings",
			err,
		)
	}

	return &UpdateNotificationSettingsOutput{Settings: *stored}, nil
}
