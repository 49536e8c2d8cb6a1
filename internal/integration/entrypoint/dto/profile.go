package dto

import (
	"time"

	"github.com/fittrack/backend/internal/application/usecase/settings"
	"github.com/fittrack/backend/internal/domain/entity"
)

// UserResponse represents the user profile in API responses.
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	ProfileImageURL  string    `json:"profile_image_url"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents the request body for a profile update.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// NotificationSettingsRequest represents the request body for the
// notification settings upsert.
type NotificationSettingsRequest struct {
	Enabled      bool    `json:"enabled"`
	ReminderTime *string `json:"reminder_time"`
}

// NotificationSettingsResponse represents the stored notification settings.
type NotificationSettingsResponse struct {
	UserID               string  `json:"user_id"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	ReminderTime         *string `json:"reminder_time"`
	UpdatedAt            string  `json:"updated_at"`
}

// LegalDocumentResponse represents the response for the legal document APIs.
type LegalDocumentResponse struct {
	Content string `json:"content"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Name:             user.Name,
		ProfileImageURL:  user.ProfileImageURL,
		TwoFactorEnabled: user.TwoFactorEnabled,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// ToNotificationSettingsResponse converts an UpdateNotificationSettingsOutput
// to NotificationSettingsResponse DTO.
func ToNotificationSettingsResponse(output *settings.UpdateNotificationSettingsOutput) NotificationSettingsResponse {
	return NotificationSettingsResponse{
		UserID:               output.Settings.UserID.String(),
		NotificationsEnabled: output.Settings.NotificationsEnabled,
		ReminderTime:         output.Settings.ReminderTime,
		UpdatedAt:            output.Settings.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
