package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"
	ContextLoggerKey    = "logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger writes one log line per request, at error level for 5xx,
// warn for 4xx and info otherwise. It also stores a request-scoped logger in
// the context for handlers.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		c.Set(ContextRequestIDKey, requestID)

		reqLog := log.With().Str("request_id", requestID).Logger()
		c.Set(ContextLoggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = reqLog.Error()
		case status >= 400:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}
		if err := c.Errors.Last(); err != nil {
			e = e.Err(err.Err)
		}

		e.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// GetLogger returns the request-scoped logger, or a no-op logger outside
// RequestLogger.
func GetLogger(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(ContextLoggerKey); ok {
		if l, ok := v.(zerolog.Logger); ok {
			return l
		}
	}
	return zerolog.Nop()
}
