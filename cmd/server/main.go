package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbuddy/backend/internal/api"
	"fitbuddy/backend/internal/config"
	"fitbuddy/backend/internal/logger"
	"fitbuddy/backend/internal/repository/mongo"
	"fitbuddy/backend/internal/service"
	"fitbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		// The logger depends on config, so fall back to a default one.
		l := logger.New(config.LogConfig{Level: "info"})
		l.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.New(cfg.Log)
	log.Info().Msg("starting FitBuddy server")

	// --- Database Connection ---
	store, err := mongo.Open(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		log.Info().Msg("disconnecting MongoDB")
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()
	log.Info().Str("database", cfg.Database.Name).Msg("database connection established")

	// --- Initialize Storage ---
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	media, err := storage.NewS3Storage(initCtx, cfg.Media, log)
	cancelInit()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize media storage")
	}

	// --- Initialize Repositories ---
	db := store.Database()
	exerciseRepo := mongo.NewMongoExerciseRepository(db)
	workoutRepo := mongo.NewMongoWorkoutRepository(db)
	userRepo := mongo.NewMongoUserRepository(db)

	// --- Initialize Services ---
	exerciseService := service.NewExerciseService(exerciseRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	userService := service.NewUserService(userRepo, media, log)

	// --- Initialize Gin Engine ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(log))
	router.MaxMultipartMemory = cfg.Upload.MaxMemory

	api.SetupRoutes(router, api.Services{
		Exercises:  exerciseService,
		Workouts:   workoutService,
		Users:      userService,
		Media:      media,
		StagingDir: cfg.Upload.StagingDir,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // Uploads to the media host happen inside the request
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exiting")
}
