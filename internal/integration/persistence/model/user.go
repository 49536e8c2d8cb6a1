// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
// Rows are provisioned by the identity provider sync; the API only reads and
// updates profile fields.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name             string    `gorm:"type:varchar(100);not null"`
	ProfileImageURL  string    `gorm:"type:text"`
	TwoFactorEnabled bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		Email:            m.Email,
		Name:             m.Name,
		ProfileImageURL:  m.ProfileImageURL,
		TwoFactorEnabled: m.TwoFactorEnabled,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
