package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user preferences, upserted on user_id.
type UserSettings struct {
	UserID               uuid.UUID
	NotificationsEnabled bool
	// ReminderTime is an "HH:MM" wall-clock string, nil when unset.
	ReminderTime *string
	UpdatedAt    time.Time
}
