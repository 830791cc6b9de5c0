package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	Init("debug", logFile)
	defer Sync()

	Sugar.Infof("converted %d tiles", 42)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "converted 42 tiles") {
		t.Errorf("log file missing expected entry, got: %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"},
		{"", "info"},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.in).String(); got != tc.expected {
			t.Errorf("parseLevel(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	// Package-level default must be usable without Init.
	Log.Info("no-op")
	Sugar.Debugf("no-op %d", 1)
}
