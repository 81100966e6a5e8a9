package api

import (
	"net/http"

	"fitbuddy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the /treinos resource.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

const workoutNotFound = "Treino not found"

// ListWorkouts handles GET /treinos.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout handles GET /treinos/:id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := pathID(c, workoutNotFound)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout handles POST /treinos.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req service.WorkoutInput
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ReplaceWorkout handles PUT /treinos/:id. The body must be a complete workout.
func (h *WorkoutHandler) ReplaceWorkout(c *gin.Context) {
	id, ok := pathID(c, workoutNotFound)
	if !ok {
		return
	}
	var req service.WorkoutInput
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.workoutService.ReplaceWorkout(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout handles PATCH /treinos/:id.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := pathID(c, workoutNotFound)
	if !ok {
		return
	}
	var req service.WorkoutPatch
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /treinos/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := pathID(c, workoutNotFound)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
