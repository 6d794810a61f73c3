package logger

import (
	"io"
	"time"

	"github.com/gmkornilov/chess-board-backend/internal/config"
	"github.com/rs/zerolog"
)

// New builds the process logger. An unknown level falls back to info.
func New(cfg config.LogConfiguration, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
