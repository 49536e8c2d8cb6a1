package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BodyStat represents one body measurement for a user on a calendar day.
// Rows are upserted on (user_id, recorded_at), so a second submission for the
// same day overwrites the first rather than duplicating it.
type BodyStat struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Weight            decimal.Decimal
	BodyFatPercentage decimal.NullDecimal
	RecordedAt        time.Time
	CreatedAt         time.Time
}
