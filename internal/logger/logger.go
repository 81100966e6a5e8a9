// Package logger builds the zerolog logger shared by the server.
package logger

import (
	"io"
	"os"
	"time"

	"fitbuddy/backend/internal/config"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stdout, or human-readable output
// when cfg.Pretty is set. Unknown levels fall back to info.
func New(cfg config.LogConfig) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "fitbuddy").
		Logger()
}
