package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"quiet wins over verbose", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid level falls back", Config{LogLevel: "loud"}, "info"},
		{"env level honored", Config{LogLevel: "trace"}, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{
		ServiceURL:      "https://reader.example",
		CredentialsFile: "/tmp/creds.yaml",
		LogLevel:        "info",
	}

	config.UpdateFromFlags(true, false, true, "", "", "")

	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	// Empty flag values leave config file and env settings alone.
	assert.Equal(t, "https://reader.example", config.ServiceURL)
	assert.Equal(t, "/tmp/creds.yaml", config.CredentialsFile)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "debug", "https://other.example", "/etc/creds.yaml")

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "https://other.example", config.ServiceURL)
	assert.Equal(t, "/etc/creds.yaml", config.CredentialsFile)
}
