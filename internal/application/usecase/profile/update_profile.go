package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update. Nil fields
// are left untouched; at least one must be set.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	ProfileImageURL *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User entity.User
}

// UpdateProfileUseCase handles partial updates of the user's profile.
type UpdateProfileUseCase struct {
	profileRepo ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute validates and applies the partial update.
func (uc *UpdateProfileUseCase) Execute(
	ctx context.Context,
	input UpdateProfileInput,
) (*UpdateProfileOutput, error) {
	if input.Name == nil && input.ProfileImageURL == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNameRequired,
			"at least one field must be provided",
			domainerror.ErrProfileNameRequired,
		)
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNameRequired,
			"name must not be empty",
			domainerror.ErrProfileNameRequired,
		)
	}

	user, err := uc.profileRepo.UpdateUser(ctx, input.UserID, ProfileUpdate{
		Name:            input.Name,
		ProfileImageURL: input.ProfileImageURL,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to update user profile",
			err,
		)
	}

	return &UpdateProfileOutput{User: *user}, nil
}
