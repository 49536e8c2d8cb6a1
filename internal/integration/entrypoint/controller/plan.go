package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/application/usecase/plan"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// PlanController handles training plan endpoints.
type PlanController struct {
	createPlanUseCase *plan.CreatePlanUseCase
	getPlanUseCase    *plan.GetPlanUseCase
	listPlansUseCase  *plan.ListPlansUseCase
	updatePlanUseCase *plan.UpdatePlanUseCase
	updateDayUseCase  *plan.UpdateDayUseCase
	deletePlanUseCase *plan.DeletePlanUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	createPlanUseCase *plan.CreatePlanUseCase,
	getPlanUseCase *plan.GetPlanUseCase,
	listPlansUseCase *plan.ListPlansUseCase,
	updatePlanUseCase *plan.UpdatePlanUseCase,
	updateDayUseCase *plan.UpdateDayUseCase,
	deletePlanUseCase *plan.DeletePlanUseCase,
) *PlanController {
	return &PlanController{
		createPlanUseCase: createPlanUseCase,
		getPlanUseCase:    getPlanUseCase,
		listPlansUseCase:  listPlansUseCase,
		updatePlanUseCase: updatePlanUseCase,
		updateDayUseCase:  updateDayUseCase,
		deletePlanUseCase: deletePlanUseCase,
	}
}

// CreatePlan handles POST /training-plans requests.
func (c *PlanController) CreatePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePlanNameRequired),
		})
		return
	}

	output, err := c.createPlanUseCase.Execute(ctx.Request.Context(), plan.CreatePlanInput{
		UserID:       userID,
		Name:         request.Name,
		TrainingDays: dto.ToTrainingDayInputs(request.TrainingDays),
	})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatePlanResponse{
		Success: true,
		PlanID:  output.PlanID.String(),
	})
}

// GetPlan handles GET /training-plans/:id requests.
func (c *PlanController) GetPlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan id",
			Code:  string(domainerror.ErrCodePlanNotFound),
		})
		return
	}

	output, err := c.getPlanUseCase.Execute(ctx.Request.Context(), plan.GetPlanInput{
		UserID: userID,
		PlanID: planID,
	})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output))
}

// ListPlans handles GET /training-plans requests.
func (c *PlanController) ListPlans(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listPlansUseCase.Execute(ctx.Request.Context(), plan.ListPlansInput{UserID: userID})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanSummaryResponses(output.Plans))
}

// UpdatePlan handles PUT /training-plans/:id requests.
func (c *PlanController) UpdatePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan id",
			Code:  string(domainerror.ErrCodePlanNotFound),
		})
		return
	}

	var request dto.UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePlanNameRequired),
		})
		return
	}

	if err := c.updatePlanUseCase.Execute(ctx.Request.Context(), plan.UpdatePlanInput{
		UserID:       userID,
		PlanID:       planID,
		Name:         request.Name,
		TrainingDays: dto.ToTrainingDayInputs(request.TrainingDays),
	}); err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// UpdateDay handles PUT /training-plans/days/:dayId requests.
func (c *PlanController) UpdateDay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	dayID, err := uuid.Parse(ctx.Param("dayId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid day id",
			Code:  string(domainerror.ErrCodeTrainingDayNotFound),
		})
		return
	}

	var request dto.UpdateDayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRepRange),
		})
		return
	}

	if err := c.updateDayUseCase.Execute(ctx.Request.Context(), plan.UpdateDayInput{
		UserID:            userID,
		DayID:             dayID,
		Title:             request.Title,
		EstimatedDuration: request.EstimatedDuration,
		Exercises:         dto.ToPlannedExerciseInputs(request.Exercises),
	}); err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeletePlan handles DELETE /training-plans/:id requests.
func (c *PlanController) DeletePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan id",
			Code:  string(domainerror.ErrCodePlanNotFound),
		})
		return
	}

	if err := c.deletePlanUseCase.Execute(ctx.Request.Context(), plan.DeletePlanInput{
		UserID: userID,
		PlanID: planID,
	}); err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		statusCode := c.getStatusCodeForPlanError(planErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPlanError maps plan error codes to HTTP status codes.
func (c *PlanController) getStatusCodeForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNameRequired,
		domainerror.ErrCodeInvalidDayNumber,
		domainerror.ErrCodeInvalidRepRange:
		return http.StatusBadRequest
	case domainerror.ErrCodePlanNotFound,
		domainerror.ErrCodeTrainingDayNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
