package api

import (
	"net/http"

	"fitbuddy/backend/internal/service"
	"fitbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Services bundles what the routes need.
type Services struct {
	Exercises service.ExerciseService
	Workouts  service.WorkoutService
	Users     service.UserService
	Media     storage.MediaHost
	// StagingDir is where profile images wait while they are uploaded.
	StagingDir string
}

func SetupRoutes(router *gin.Engine, s Services) {
	exerciseHandler := NewExerciseHandler(s.Exercises)
	workoutHandler := NewWorkoutHandler(s.Workouts)
	userHandler := NewUserHandler(s.Users)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	exerciseGroup := router.Group("/exercises")
	{
		exerciseGroup.GET("", exerciseHandler.ListExercises)
		exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		exerciseGroup.POST("", exerciseHandler.CreateExercise)
		exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
		exerciseGroup.PATCH("/:id", exerciseHandler.UpdateExercise)
		exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
	}

	workoutGroup := router.Group("/treinos")
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.GET("/:id", workoutHandler.GetWorkout)
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.PUT("/:id", workoutHandler.ReplaceWorkout)
		workoutGroup.PATCH("/:id", workoutHandler.UpdateWorkout)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
	}

	userGroup := router.Group("/users")
	{
		userGroup.GET("", userHandler.ListUsers)
		userGroup.GET("/:id", userHandler.GetUser)
		userGroup.POST("", UploadProfileImage(s.Media, s.StagingDir), userHandler.CreateUser)
		userGroup.PUT("/:id", userHandler.UpdateUser)
		userGroup.PATCH("/:id", userHandler.UpdateUser)
		userGroup.DELETE("/:id", userHandler.DeleteUser)
	}

	// Singular path used by the original mobile client.
	router.PATCH("/user/:id", userHandler.UpdateUser)
}
