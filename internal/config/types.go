package config

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	preferencesFile = "preferences.yaml"
	logFile         = "storybox.log"
	exportDir       = "illustrations"
)

// Config holds process-wide settings read from the environment at startup.
type Config struct {
	APIKey         string `env:"GEMINI_API_KEY"`
	FallbackAPIKey string `env:"API_KEY"`

	TextModel  string `env:"STORYBOX_TEXT_MODEL" env-default:"gemini-2.5-pro" validate:"required"`
	ImageModel string `env:"STORYBOX_IMAGE_MODEL" env-default:"imagen-4.0-generate-001" validate:"required"`

	TypewriterInterval time.Duration `env:"STORYBOX_TYPEWRITER_INTERVAL" env-default:"20ms" validate:"gt=0"`
	// RequestTimeout bounds a whole generation when positive. Zero disables it.
	RequestTimeout time.Duration `env:"STORYBOX_REQUEST_TIMEOUT" env-default:"0s" validate:"gte=0"`

	Home     string `env:"STORYBOX_HOME"`
	LogLevel string `env:"STORYBOX_LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn error"`
}

// ResolvedAPIKey returns the provider credential, preferring GEMINI_API_KEY.
func (c *Config) ResolvedAPIKey() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.FallbackAPIKey)
}

// PreferencesPath is where the theme preference is persisted.
func (c *Config) PreferencesPath() string {
	return filepath.Join(c.Home, preferencesFile)
}

// LogPath is where the interactive UI writes diagnostics.
func (c *Config) LogPath() string {
	return filepath.Join(c.Home, logFile)
}

// ExportDir is the default destination for saved illustrations.
func (c *Config) ExportDir() string {
	return filepath.Join(c.Home, exportDir)
}
