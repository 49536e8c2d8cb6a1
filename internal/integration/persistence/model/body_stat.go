package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
)

// BodyStatModel represents the body_stats table in the database.
// One row per user per calendar day, upserted on (user_id, recorded_date).
type BodyStatModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_body_stats_user_date"`
	Weight       decimal.Decimal     `gorm:"type:decimal(5,2);not null"`
	BodyFat      decimal.NullDecimal `gorm:"type:decimal(4,1)"`
	RecordedDate time.Time           `gorm:"type:date;not null;uniqueIndex:idx_body_stats_user_date"`
	CreatedAt    time.Time           `gorm:"not null"`
}

// TableName returns the table name for the BodyStatModel.
func (BodyStatModel) TableName() string {
	return "body_stats"
}

// ToEntity converts a BodyStatModel to a domain BodyStat entity.
func (m *BodyStatModel) ToEntity() *entity.BodyStat {
	return &entity.BodyStat{
		ID:                m.ID,
		UserID:            m.UserID,
		Weight:            m.Weight,
		BodyFatPercentage: m.BodyFat,
		RecordedAt:        m.RecordedDate,
		CreatedAt:         m.CreatedAt,
	}
}

// BodyStatFromEntity converts a domain BodyStat entity to a BodyStatModel.
func BodyStatFromEntity(stat *entity.BodyStat) *BodyStatModel {
	return &BodyStatModel{
		ID:           stat.ID,
		UserID:       stat.UserID,
		Weight:       stat.Weight,
		BodyFat:      stat.BodyFatPercentage,
		RecordedDate: stat.RecordedAt,
		CreatedAt:    stat.CreatedAt,
	}
}
