package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/application/usecase/bodystats"
	"github.com/fittrack/backend/internal/application/usecase/profile"
	"github.com/fittrack/backend/internal/application/usecase/settings"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// UserController handles profile, body stats, and settings endpoints.
type UserController struct {
	getProfileUseCase     *profile.GetProfileUseCase
	updateProfileUseCase  *profile.UpdateProfileUseCase
	recordBodyStatUseCase *bodystats.RecordBodyStatUseCase
	getHistoryUseCase     *bodystats.GetHistoryUseCase
	updateSettingsUseCase *settings.UpdateNotificationSettingsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *profile.GetProfileUseCase,
	updateProfileUseCase *profile.UpdateProfileUseCase,
	recordBodyStatUseCase *bodystats.RecordBodyStatUseCase,
	getHistoryUseCase *bodystats.GetHistoryUseCase,
	updateSettingsUseCase *settings.UpdateNotificationSettingsUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		recordBodyStatUseCase: recordBodyStatUseCase,
		getHistoryUseCase:     getHistoryUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
	}
}

// GetProfile handles GET /users/profile requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PUT /users/profile requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeProfileNameRequired),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:          userID,
		Name:            request.Name,
		ProfileImageURL: request.ProfileImageURL,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// RecordBodyStats handles POST /users/body-stats requests.
func (c *UserController) RecordBodyStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.RecordBodyStatsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBodyStatFields),
		})
		return
	}

	input := bodystats.RecordBodyStatInput{
		UserID: userID,
		Weight: decimal.NewFromFloat(request.Weight),
		Date:   request.Date,
	}
	if request.BodyFat != nil {
		input.BodyFat = decimal.NewNullDecimal(decimal.NewFromFloat(*request.BodyFat))
	}

	output, err := c.recordBodyStatUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBodyStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordBodyStatsResponse(output))
}

// GetBodyStatsHistory handles GET /users/body-stats requests.
func (c *UserController) GetBodyStatsHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
				Code:  string(domainerror.ErrCodeMissingBodyStatFields),
			})
			return
		}
		limit = parsed
	}

	input := bodystats.GetHistoryInput{
		UserID: userID,
		Period: bodystats.HistoryPeriod(ctx.DefaultQuery("period", string(bodystats.HistoryLatest))),
		Limit:  limit,
	}

	output, err := c.getHistoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBodyStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBodyStatsHistoryResponse(output))
}

// UpdateNotificationSettings handles PUT /users/notification-settings requests.
func (c *UserController) UpdateNotificationSettings(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.NotificationSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidReminderTime),
		})
		return
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), settings.UpdateNotificationSettingsInput{
		UserID:       userID,
		Enabled:      request.Enabled,
		ReminderTime: request.ReminderTime,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationSettingsResponse(output))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *UserController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		statusCode := c.getStatusCodeForProfileError(profileErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *UserController) getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNameRequired,
		domainerror.ErrCodeInvalidDocumentType,
		domainerror.ErrCodeInvalidReminderTime:
		return http.StatusBadRequest
	case domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeDocumentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleBodyStatsError handles body stats errors and returns appropriate HTTP responses.
func (c *UserController) handleBodyStatsError(ctx *gin.Context, err error) {
	var bodyStatsErr *domainerror.BodyStatsError
	if errors.As(err, &bodyStatsErr) {
		statusCode := c.getStatusCodeForBodyStatsError(bodyStatsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: bodyStatsErr.Message,
			Code:  string(bodyStatsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBodyStatsError maps body stats error codes to HTTP status codes.
func (c *UserController) getStatusCodeForBodyStatsError(code domainerror.BodyStatsErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingBodyStatFields,
		domainerror.ErrCodeInvalidBodyStatDate,
		domainerror.ErrCodeInvalidWeight,
		domainerror.ErrCodeInvalidBodyFat,
		domainerror.ErrCodeInvalidHistoryPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
