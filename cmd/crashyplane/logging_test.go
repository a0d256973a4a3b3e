package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestGetLogPathCustom(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "logs", "plane.log")

	got, err := getLogPath(custom)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != custom {
		t.Errorf("Expected %s, got %s", custom, got)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Errorf("Expected log file to be created: %v", err)
	}
}

func TestGetLogPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := getLogPath("~/state/plane.log")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if want := filepath.Join(home, "state", "plane.log"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
