package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/profile"
	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// profileRepository implements the profile.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) profile.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetUser returns the user's profile row.
func (r *profileRepository) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", userID).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// UpdateUser applies the partial update and returns the stored state.
func (r *profileRepository) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	update profile.ProfileUpdate,
) (*entity.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.ProfileImageURL != nil {
		updates["profile_image_url"] = *update.ProfileImageURL
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrUserNotFound
	}

	return r.GetUser(ctx, userID)
}
