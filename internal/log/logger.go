package log

import (
	"io"
	"log/slog"
	"os"
)

type LoggerConfiguration struct {
	LogLevel slog.Level
	Writer   io.Writer
}

// NewLogger returns a JSON slog logger with source positions. A nil Writer
// logs to stdout.
func NewLogger(config *LoggerConfiguration) *slog.Logger {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	return slog.New(slog.NewJSONHandler(config.Writer, &slog.HandlerOptions{
		Level:     config.LogLevel,
		AddSource: true,
	}))
}

// SetDefault installs logger for every package that logs through G.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// G is the process-wide logger.
func G() *slog.Logger {
	return slog.Default()
}

// Scene tags records from the game scene.
func Scene() *slog.Logger {
	return slog.With("component", "scene")
}

// Engine tags records from the director and its worlds.
func Engine() *slog.Logger {
	return slog.With("component", "engine")
}

// Frontend tags records from the console and tui hosts.
func Frontend() *slog.Logger {
	return slog.With("component", "frontend")
}
