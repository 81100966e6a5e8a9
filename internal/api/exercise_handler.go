package api

import (
	"net/http"

	"fitbuddy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

const exerciseNotFound = "Exercise not found"

// ListExercises handles GET /exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := pathID(c, exerciseNotFound)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateExercise handles POST /exercises. Any JSON object is accepted.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	attrs, ok := bindAttributes(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), attrs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise handles PUT and PATCH /exercises/:id; both merge the body
// into the stored document.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := pathID(c, exerciseNotFound)
	if !ok {
		return
	}
	attrs, ok := bindAttributes(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), id, attrs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise handles DELETE /exercises/:id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := pathID(c, exerciseNotFound)
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
