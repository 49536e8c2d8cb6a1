// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fittrack/backend/internal/integration/entrypoint/controller"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	homeController     *controller.HomeController
	progressController *controller.ProgressController
	userController     *controller.UserController
	exerciseController *controller.ExerciseController
	planController     *controller.PlanController
	sessionController  *controller.SessionController
	legalController    *controller.LegalController
	rateLimiter        *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	homeController *controller.HomeController,
	progressController *controller.ProgressController,
	userController *controller.UserController,
	exerciseController *controller.ExerciseController,
	planController *controller.PlanController,
	sessionController *controller.SessionController,
	legalController *controller.LegalController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		homeController:     homeController,
		progressController: progressController,
		userController:     userController,
		exerciseController: exerciseController,
		planController:     planController,
		sessionController:  sessionController,
		legalController:    legalController,
		rateLimiter:        rateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Legal documents are public
		if r.legalController != nil {
			legal := v1.Group("/legal")
			{
				legal.GET("/privacy-policy", r.legalController.GetPrivacyPolicy)
				legal.GET("/terms-of-service", r.legalController.GetTermsOfService)
			}
		}

		if r.authMiddleware == nil {
			return
		}

		authenticated := v1.Group("")
		authenticated.Use(r.authMiddleware.Authenticate())
		if r.rateLimiter != nil {
			authenticated.Use(r.rateLimiter.Middleware())
		}

		if r.homeController != nil {
			authenticated.GET("/home", r.homeController.GetHomeSummary)
		}

		if r.userController != nil {
			users := authenticated.Group("/users")
			{
				users.GET("/profile", r.userController.GetProfile)
				users.PUT("/profile", r.userController.UpdateProfile)
				users.POST("/body-stats", r.userController.RecordBodyStats)
				users.GET("/body-stats", r.userController.GetBodyStatsHistory)
				users.PUT("/notification-settings", r.userController.UpdateNotificationSettings)
			}
		}

		if r.exerciseController != nil {
			authenticated.GET("/exercises", r.exerciseController.ListExercises)
		}

		if r.planController != nil {
			plans := authenticated.Group("/training-plans")
			{
				plans.POST("", r.planController.CreatePlan)
				plans.GET("", r.planController.ListPlans)
				plans.GET("/:id", r.planController.GetPlan)
				plans.PUT("/:id", r.planController.UpdatePlan)
				plans.DELETE("/:id", r.planController.DeletePlan)
				plans.PUT("/days/:dayId", r.planController.UpdateDay)
			}
		}

		if r.sessionController != nil && r.progressController != nil {
			workouts := authenticated.Group("/workouts")
			{
				workouts.GET("/progress", r.progressController.GetProgressData)
				workouts.GET("/history", r.sessionController.GetHistory)

				sessions := workouts.Group("/sessions")
				{
					sessions.POST("/start", r.sessionController.StartSession)
					sessions.POST("/complete", r.sessionController.CompleteSession)
					sessions.POST("/sets", r.sessionController.RecordSet)
				}
			}
		}
	}
}
