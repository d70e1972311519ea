// Package logger builds the process-wide zerolog logger from config.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/babumoltbot/saasname/app/config"
)

// NewLogger creates a logger from the LOG_STYLE/LOG_LEVEL config.
func NewLogger(cfg config.LogConfig) zerolog.Logger {
	return New(cfg.Style, cfg.Level)
}

// New creates a logger with the given output style and level.
func New(style, level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLogLevel(level))

	var logger zerolog.Logger
	if strings.EqualFold(style, "json") {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return logger.With().Timestamp().Logger()
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
