// Package bodystats contains the body composition tracking use cases.
package bodystats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// BodyStatsRepository defines body-stat persistence operations.
type BodyStatsRepository interface {
	// Upsert inserts the stat or replaces the existing row for the same
	// (user_id, recorded_at) day.
	Upsert(ctx context.Context, stat entity.BodyStat) (*entity.BodyStat, error)

	// ListRecent returns the user's most recent stats, descending by
	// recorded_at, at most limit rows.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.BodyStat, error)

	// ListBetween returns the user's stats recorded in [from, to],
	// descending by recorded_at. limit 0 means no limit.
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]entity.BodyStat, error)
}
