// Package entity defines the core domain entities for the FitTrack application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user profile.
//
// Identity (credentials, sessions) lives with the external auth provider;
// this entity only carries the profile data the API serves and updates.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	ProfileImageURL  string
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
