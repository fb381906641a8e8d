package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := New(&buf)

	logger.Info().Str("provider", "vimeo").Msg("listing")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["provider"] != "vimeo" {
		t.Errorf("expected provider field vimeo, got %v", entry["provider"])
	}
	if entry["message"] != "listing" {
		t.Errorf("expected message 'listing', got %v", entry["message"])
	}
}

func TestConfigureRespectsLevel(t *testing.T) {
	old := defaultLogger
	defer SetDefault(old)

	var buf bytes.Buffer
	Configure(&Config{Level: "error", Format: "json", Output: "discard"})
	logger := New(&buf)

	logger.Debug().Msg("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed at error level, got %q", buf.String())
	}
}
