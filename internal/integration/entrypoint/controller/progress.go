package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack/backend/internal/application/usecase/progress"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles the progress chart endpoint.
type ProgressController struct {
	getProgressDataUseCase *progress.GetProgressDataUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(getProgressDataUseCase *progress.GetProgressDataUseCase) *ProgressController {
	return &ProgressController{
		getProgressDataUseCase: getProgressDataUseCase,
	}
}

// GetProgressData handles GET /workouts/progress requests.
func (c *ProgressController) GetProgressData(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := progress.GetProgressDataInput{
		UserID:   userID,
		DataType: progress.DataType(ctx.DefaultQuery("dataType", string(progress.DataTypeWeight))),
		Period:   progress.Period(ctx.DefaultQuery("period", string(progress.PeriodMonth))),
	}

	output, err := c.getProgressDataUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressDataResponse(output))
}

// handleProgressError handles progress errors and returns appropriate HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		statusCode := c.getStatusCodeForProgressError(progressErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProgressError maps progress error codes to HTTP status codes.
func (c *ProgressController) getStatusCodeForProgressError(code domainerror.ProgressErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDataType,
		domainerror.ErrCodeInvalidPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
