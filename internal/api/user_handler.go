package api

import (
	"net/http"

	"fitbuddy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the /users resource.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

const userNotFound = "User not found"

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, userNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users after UploadProfileImage. Text fields of
// the multipart form become the user's attributes.
func (h *UserHandler) CreateUser(c *gin.Context) {
	user, err := h.userService.CreateUser(c.Request.Context(), formAttributes(c), uploadedObject(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id, PATCH /users/:id and PATCH /user/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, userNotFound)
	if !ok {
		return
	}
	attrs, ok := bindAttributes(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, attrs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, userNotFound)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
