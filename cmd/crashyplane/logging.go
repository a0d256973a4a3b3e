package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/shvbsle/crashyplane/internal/log"
)

// parseLogLevel maps a -log-level value onto slog. Unknown or empty values
// mean info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getLogPath picks where the game log goes. A log_path from the config wins
// when its directory can be created and the file opened for append;
// otherwise the log lives under the XDG state directory.
func getLogPath(customPath string) (string, error) {
	if customPath != "" {
		if usable, ok := tryLogPath(customPath); ok {
			return usable, nil
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use custom log path %s, falling back to XDG default\n", customPath)
	}

	logPath, err := xdg.StateFile(filepath.Join("crashyplane", "crashyplane.log"))
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}
	return logPath, nil
}

// tryLogPath expands a leading ~ and checks that path can be appended to.
func tryLogPath(path string) (string, bool) {
	if rest, found := strings.CutPrefix(path, "~/"); found {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", false
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return "", false
	}
	_ = f.Close()
	return path, true
}

// setupLogging sends the JSON game log to a file. Both frontends own the
// terminal, so nothing is logged to stdout. The caller closes the file.
func setupLogging(logLevel slog.Level, customLogPath string) (*os.File, error) {
	logPath, err := getLogPath(customLogPath)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewLogger(&log.LoggerConfiguration{
		LogLevel: logLevel,
		Writer:   f,
	}))

	log.G().Info("crashyplane logging initialized", "log_path", logPath, "log_level", logLevel.String())
	return f, nil
}
