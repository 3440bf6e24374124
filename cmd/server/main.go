package main

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/api"
	"fitmanager/routine-service/internal/auth"
	"fitmanager/routine-service/internal/config"
	"fitmanager/routine-service/internal/logger"
	"fitmanager/routine-service/internal/metrics"
	"fitmanager/routine-service/internal/repository/mongo"
	"fitmanager/routine-service/internal/service"
	"fitmanager/routine-service/internal/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Routine Service API
// @version 1.0
// @description Exercise catalog, user routines and workout logs.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("Could not load config")
	}

	log := logger.New(cfg.Log).WithField("service", cfg.Service.Name)
	log.Info("Starting routine service")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer func() {
		log.Info("Disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.WithField("database", cfg.Database.Name).Info("Database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.WithError(err).Warn("Index creation finished with errors")
			return
		}
		log.Info("Index creation process completed")
	}()

	// --- Initialize Storage ---
	var mediaService service.MediaService
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3, log)
	switch {
	case errors.Is(err, storage.ErrStorageDisabled):
		log.Info("No S3 bucket configured; exercise media uploads are disabled")
	case err != nil:
		log.WithError(err).Fatal("Failed to initialize S3 storage")
	default:
		mediaService = service.NewMediaService(fileStorage, cfg.S3.UploadExpiry, log)
	}

	// --- Initialize Repositories ---
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	routineRepo := mongo.NewMongoRoutineRepository(appDB)
	workoutLogRepo := mongo.NewMongoWorkoutLogRepository(appDB)

	// --- Initialize Services ---
	exerciseService := service.NewExerciseService(exerciseRepo, log)
	routineService := service.NewRoutineService(routineRepo, exerciseRepo, log)
	workoutLogService := service.NewWorkoutLogService(workoutLogRepo, routineRepo, exerciseRepo, log)

	// --- Initialize Gin Engine ---
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	appMetrics := metrics.New(cfg.Service.Name)
	rateLimiter := api.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, log)
	rateLimiter.StartCleanup(rootCtx, time.Minute)

	// --- Setup Routes ---
	api.SetupRoutes(router, api.Dependencies{
		ServiceName:       cfg.Service.Name,
		StorePing:         func(ctx context.Context) error { return mongo.Ping(ctx, dbClient) },
		Log:               log,
		Verifier:          auth.NewVerifier(cfg.JWT.Secret),
		Metrics:           appMetrics,
		RateLimiter:       rateLimiter,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		ExerciseService:   exerciseService,
		RoutineService:    routineService,
		WorkoutLogService: workoutLogService,
		MediaService:      mediaService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Graceful Shutdown ---
	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")
	appMetrics.SetUp(false)
	stop()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server exiting")
}
