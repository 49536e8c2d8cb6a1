package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack/backend/internal/application/usecase/home"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// HomeController handles the home screen endpoint.
type HomeController struct {
	getHomeSummaryUseCase *home.GetHomeSummaryUseCase
}

// NewHomeController creates a new home controller instance.
func NewHomeController(getHomeSummaryUseCase *home.GetHomeSummaryUseCase) *HomeController {
	return &HomeController{
		getHomeSummaryUseCase: getHomeSummaryUseCase,
	}
}

// GetHomeSummary handles GET /home requests. A missing plan or a rest day is
// a normal 200 payload, never an error.
func (c *HomeController) GetHomeSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getHomeSummaryUseCase.Execute(ctx.Request.Context(), home.GetHomeSummaryInput{UserID: userID})
	if err != nil {
		var homeErr *domainerror.HomeError
		if errors.As(err, &homeErr) {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: homeErr.Message,
				Code:  string(homeErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}
