package settings

import (
	"context"

	"github.com/fittrack/backend/internal/domain/entity"
)

// SettingsRepository abstracts per-user settings storage.
type SettingsRepository interface {
	// UpsertSettings inserts or updates the user's settings row, keyed by
	// user id, and returns the stored state.
	UpsertSettings(ctx context.Context, settings entity.UserSettings) (*entity.UserSettings, error)
}
