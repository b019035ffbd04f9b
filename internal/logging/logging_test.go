package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigureTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := configure(Config{Level: "INFO", Format: "text"}, &buf)

	logger.Info("hello", "key", "value")
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestConfigureJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := configure(Config{Level: "INFO", Format: "json"}, &buf)

	logger.Info("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected json output, got %q", buf.String())
	}
}

func TestConfigureLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := configure(Config{Level: "WARN"}, &buf)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("expected warn to be logged")
	}
}
