// Package main is the entry point for the FitTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fittrack/backend/config"
	"github.com/fittrack/backend/internal/application/usecase/bodystats"
	"github.com/fittrack/backend/internal/application/usecase/exercise"
	"github.com/fittrack/backend/internal/application/usecase/home"
	"github.com/fittrack/backend/internal/application/usecase/legal"
	"github.com/fittrack/backend/internal/application/usecase/plan"
	"github.com/fittrack/backend/internal/application/usecase/profile"
	"github.com/fittrack/backend/internal/application/usecase/progress"
	"github.com/fittrack/backend/internal/application/usecase/settings"
	"github.com/fittrack/backend/internal/application/usecase/workout"
	"github.com/fittrack/backend/internal/infra/db"
	"github.com/fittrack/backend/internal/infra/server/router"
	"github.com/fittrack/backend/internal/integration/adapters"
	"github.com/fittrack/backend/internal/integration/entrypoint/controller"
	"github.com/fittrack/backend/internal/integration/entrypoint/middleware"
	"github.com/fittrack/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FitTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Redis backs the per-user rate limiter
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var homeController *controller.HomeController
	var progressController *controller.ProgressController
	var userController *controller.UserController
	var exerciseController *controller.ExerciseController
	var planController *controller.PlanController
	var sessionController *controller.SessionController
	var legalController *controller.LegalController
	var rateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		progressRepo := persistence.NewProgressRepository(database.DB())
		homeRepo := persistence.NewHomeRepository(database.DB())
		profileRepo := persistence.NewProfileRepository(database.DB())
		bodyStatsRepo := persistence.NewBodyStatsRepository(database.DB())
		settingsRepo := persistence.NewSettingsRepository(database.DB())
		exerciseRepo := persistence.NewExerciseRepository(database.DB())
		planRepo := persistence.NewPlanRepository(database.DB())
		workoutRepo := persistence.NewWorkoutRepository(database.DB())
		legalRepo := persistence.NewLegalRepository(database.DB())

		// Create adapters/services
		tokenVerifier := adapters.NewTokenVerifier(cfg.JWT.Secret)

		// Create use cases
		getProgressDataUseCase := progress.NewGetProgressDataUseCase(progressRepo, nil)
		getHomeSummaryUseCase := home.NewGetHomeSummaryUseCase(homeRepo, nil)
		getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
		updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
		recordBodyStatUseCase := bodystats.NewRecordBodyStatUseCase(bodyStatsRepo)
		getBodyStatsHistoryUseCase := bodystats.NewGetHistoryUseCase(bodyStatsRepo, nil)
		updateSettingsUseCase := settings.NewUpdateNotificationSettingsUseCase(settingsRepo, nil)
		listExercisesUseCase := exercise.NewListExercisesUseCase(exerciseRepo)
		createPlanUseCase := plan.NewCreatePlanUseCase(planRepo, nil)
		getPlanUseCase := plan.NewGetPlanUseCase(planRepo)
		listPlansUseCase := plan.NewListPlansUseCase(planRepo)
		updatePlanUseCase := plan.NewUpdatePlanUseCase(planRepo)
		updateDayUseCase := plan.NewUpdateDayUseCase(planRepo)
		deletePlanUseCase := plan.NewDeletePlanUseCase(planRepo)
		startSessionUseCase := workout.NewStartSessionUseCase(workoutRepo, nil)
		completeSessionUseCase := workout.NewCompleteSessionUseCase(workoutRepo, nil)
		recordSetUseCase := workout.NewRecordSetUseCase(workoutRepo, nil)
		getWorkoutHistoryUseCase := workout.NewGetHistoryUseCase(workoutRepo)
		getDocumentUseCase := legal.NewGetDocumentUseCase(legalRepo)

		// Create controllers
		homeController = controller.NewHomeController(getHomeSummaryUseCase)
		progressController = controller.NewProgressController(getProgressDataUseCase)
		userController = controller.NewUserController(
			getProfileUseCase,
			updateProfileUseCase,
			recordBodyStatUseCase,
			getBodyStatsHistoryUseCase,
			updateSettingsUseCase,
		)
		exerciseController = controller.NewExerciseController(listExercisesUseCase)
		planController = controller.NewPlanController(
			createPlanUseCase,
			getPlanUseCase,
			listPlansUseCase,
			updatePlanUseCase,
			updateDayUseCase,
			deletePlanUseCase,
		)
		sessionController = controller.NewSessionController(
			startSessionUseCase,
			completeSessionUseCase,
			recordSetUseCase,
			getWorkoutHistoryUseCase,
		)
		legalController = controller.NewLegalController(getDocumentUseCase)

		// Create middleware
		rateLimiter = middleware.NewRateLimiter(redisClient)
		authMiddleware = middleware.NewAuthMiddleware(tokenVerifier)

		slog.Info("API components initialized successfully")
	} else {
		slog.Warn("API components not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		homeController,
		progressController,
		userController,
		exerciseController,
		planController,
		sessionController,
		legalController,
		rateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
