package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
)

// ProfileUpdate carries the fields a profile update may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name            *string
	ProfileImageURL *string
}

// ProfileRepository abstracts the users table.
type ProfileRepository interface {
	// GetUser returns the user's profile row, or domain ErrUserNotFound.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateUser applies the partial update and returns the stored state,
	// or domain ErrUserNotFound when the row does not exist.
	UpdateUser(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*entity.User, error)
}
