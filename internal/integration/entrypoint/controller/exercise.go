package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fittrack/backend/internal/application/usecase/exercise"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// ExerciseController handles the exercise catalog endpoint.
type ExerciseController struct {
	listExercisesUseCase *exercise.ListExercisesUseCase
}

// NewExerciseController creates a new exercise controller instance.
func NewExerciseController(listExercisesUseCase *exercise.ListExercisesUseCase) *ExerciseController {
	return &ExerciseController{
		listExercisesUseCase: listExercisesUseCase,
	}
}

// ListExercises handles GET /exercises requests. Unparseable page or limit
// values fall back to the defaults.
func (c *ExerciseController) ListExercises(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	output, err := c.listExercisesUseCase.Execute(ctx.Request.Context(), exercise.ListExercisesInput{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExerciseListResponse(output))
}
