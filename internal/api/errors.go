package api

import (
	"errors"

	"fitbuddy/backend/internal/errs"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// abortWithError renders err and stops the handler chain. The cause is
// attached to the context so the request logger can report it; clients only
// see the kind's code and message.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		appErr = errs.ErrInternal
	}
	message := appErr.Message
	if appErr.Kind == errs.Internal {
		message = "Internal server error"
	}

	c.AbortWithStatusJSON(appErr.Kind.Status(), ErrorResponse{
		Code:    appErr.Kind.Code(),
		Message: message,
		Errors:  appErr.Fields,
	})
}
