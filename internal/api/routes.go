package api

import (
	"context"
	"fitmanager/routine-service/internal/auth"
	"fitmanager/routine-service/internal/metrics"
	"fitmanager/routine-service/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies are the collaborators the HTTP layer is built from. MediaService may be
// nil, in which case the upload route is not registered. StorePing backs the database
// field of /health when set.
type Dependencies struct {
	ServiceName       string
	StorePing         func(ctx context.Context) error
	Log               logrus.FieldLogger
	Verifier          *auth.Verifier
	Metrics           *metrics.Metrics
	RateLimiter       *RateLimiter
	AllowedOrigins    []string
	ExerciseService   service.ExerciseService
	RoutineService    service.RoutineService
	WorkoutLogService service.WorkoutLogService
	MediaService      service.MediaService
}

const healthPingTimeout = 2 * time.Second

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	exerciseHandler := NewExerciseHandler(deps.ExerciseService, deps.Log)
	routineHandler := NewRoutineHandler(deps.RoutineService, deps.Log)
	workoutLogHandler := NewWorkoutLogHandler(deps.WorkoutLogService, deps.Log)

	router.Use(Recovery(deps.Log), RequestLogger(deps.Log), CORS(deps.AllowedOrigins))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	// Unauthenticated and not rate limited.
	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":    "OK",
			"service":   deps.ServiceName,
			"timestamp": time.Now().UTC(),
		}
		if deps.StorePing != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			body["database"] = "connected"
			if err := deps.StorePing(ctx); err != nil {
				deps.Log.WithError(err).Warn("Health check could not reach the store")
				body["database"] = "disconnected"
			}
		}
		c.JSON(http.StatusOK, body)
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	protected := router.Group("")
	if deps.RateLimiter != nil {
		protected.Use(deps.RateLimiter.Middleware())
	}
	protected.Use(AuthMiddleware(deps.Verifier))
	{
		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			// Static segments are registered alongside /:id; gin prefers them.
			exerciseGroup.GET("/stats", exerciseHandler.GetExerciseStats)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.POST("/bulk", exerciseHandler.BulkCreateExercises)
			exerciseGroup.POST("/seed", exerciseHandler.SeedExercises)

			if deps.MediaService != nil {
				mediaHandler := NewMediaHandler(deps.MediaService, deps.Log)
				exerciseGroup.POST("/media/upload-url", mediaHandler.RequestUploadURL)
			}
		}

		// --- Routine Routes ---
		routineGroup := protected.Group("/routines")
		{
			routineGroup.GET("", routineHandler.ListRoutines)
			routineGroup.GET("/popular", routineHandler.ListPopularRoutines)
			routineGroup.GET("/summary", routineHandler.SummarizeRoutines)
			routineGroup.GET("/:id", routineHandler.GetRoutine)
			routineGroup.POST("", routineHandler.CreateRoutine)
			routineGroup.PUT("/:id", routineHandler.UpdateRoutine)
			routineGroup.DELETE("/:id", routineHandler.DeleteRoutine)
		}

		// --- Workout Log Routes ---
		workoutLogGroup := protected.Group("/workout-logs")
		{
			workoutLogGroup.GET("", workoutLogHandler.ListWorkoutLogs)
			workoutLogGroup.POST("", workoutLogHandler.CreateWorkoutLog)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Route not found")
	})
}
