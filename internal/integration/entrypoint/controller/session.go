package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/application/usecase/workout"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// SessionController handles training session endpoints.
type SessionController struct {
	startSessionUseCase    *workout.StartSessionUseCase
	completeSessionUseCase *workout.CompleteSessionUseCase
	recordSetUseCase       *workout.RecordSetUseCase
	getHistoryUseCase      *workout.GetHistoryUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	startSessionUseCase *workout.StartSessionUseCase,
	completeSessionUseCase *workout.CompleteSessionUseCase,
	recordSetUseCase *workout.RecordSetUseCase,
	getHistoryUseCase *workout.GetHistoryUseCase,
) *SessionController {
	return &SessionController{
		startSessionUseCase:    startSessionUseCase,
		completeSessionUseCase: completeSessionUseCase,
		recordSetUseCase:       recordSetUseCase,
		getHistoryUseCase:      getHistoryUseCase,
	}
}

// StartSession handles POST /sessions/start requests.
func (c *SessionController) StartSession(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	dayID, err := uuid.Parse(request.DayID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "dayId is required",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	output, err := c.startSessionUseCase.Execute(ctx.Request.Context(), workout.StartSessionInput{
		UserID:        userID,
		TrainingDayID: dayID,
	})
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SessionMessageResponse{
		Message: "トレーニングセッションを開始しました",
		Session: dto.ToSessionResponse(output.Session),
	})
}

// CompleteSession handles POST /sessions/complete requests.
func (c *SessionController) CompleteSession(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.CompleteSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	sessionID, err := uuid.Parse(request.SessionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "sessionId is required",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	output, err := c.completeSessionUseCase.Execute(ctx.Request.Context(), workout.CompleteSessionInput{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionMessageResponse{
		Message: "トレーニングセッションを完了しました",
		Session: dto.ToSessionResponse(output.Session),
	})
}

// RecordSet handles POST /sessions/sets requests.
func (c *SessionController) RecordSet(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.RecordSetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	sessionID, err := uuid.Parse(request.SessionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "sessionId is required",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}
	exerciseID, err := uuid.Parse(request.ExerciseID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "exerciseId is required",
			Code:  string(domainerror.ErrCodeInvalidSetData),
		})
		return
	}

	output, err := c.recordSetUseCase.Execute(ctx.Request.Context(), workout.RecordSetInput{
		UserID:     userID,
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		SetNumber:  request.SetNumber,
		Weight:     decimal.NewFromFloat(request.Weight),
		Reps:       request.Reps,
	})
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordSetResponse(output))
}

// GetHistory handles GET /workouts/history requests.
func (c *SessionController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	limit, err := parseQueryInt(ctx, "limit", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "limit must be an integer",
			Code:  string(domainerror.ErrCodeInvalidHistoryLimit),
		})
		return
	}
	offset, err := parseQueryInt(ctx, "offset", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "offset must be an integer",
			Code:  string(domainerror.ErrCodeInvalidHistoryLimit),
		})
		return
	}

	output, err := c.getHistoryUseCase.Execute(ctx.Request.Context(), workout.GetHistoryInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Items)
}

// parseQueryInt reads an optional integer query parameter.
func parseQueryInt(ctx *gin.Context, name string, defaultValue int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

// handleWorkoutError handles workout errors and returns appropriate HTTP responses.
func (c *SessionController) handleWorkoutError(ctx *gin.Context, err error) {
	var workoutErr *domainerror.WorkoutError
	if errors.As(err, &workoutErr) {
		statusCode := c.getStatusCodeForWorkoutError(workoutErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: workoutErr.Message,
			Code:  string(workoutErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWorkoutError maps workout error codes to HTTP status codes.
func (c *SessionController) getStatusCodeForWorkoutError(code domainerror.WorkoutErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSetData,
		domainerror.ErrCodeInvalidHistoryLimit,
		domainerror.ErrCodeSessionAlreadyCompleted:
		return http.StatusBadRequest
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
