package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// GetProfileInput represents the input for fetching the user's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of fetching the user's profile.
type GetProfileOutput struct {
	User entity.User
}

// GetProfileUseCase handles fetching the authenticated user's profile.
type GetProfileUseCase struct {
	profileRepo ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute fetches the profile row for the authenticated user.
func (uc *GetProfileUseCase) Execute(
	ctx context.Context,
	input GetProfileInput,
) (*GetProfileOutput, error) {
	user, err := uc.profileRepo.GetUser(ctx, input.UserID)
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
			"failed to get user profile",
			err,
		)
	}

	return &GetProfileOutput{User: *user}, nil
}
