package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "API_KEY", "STORYBOX_TEXT_MODEL", "STORYBOX_IMAGE_MODEL",
		"STORYBOX_TYPEWRITER_INTERVAL", "STORYBOX_REQUEST_TIMEOUT", "STORYBOX_LOG_LEVEL",
	} {
		// cleanenv only applies env-default when the variable is absent.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("STORYBOX_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "gemini-2.5-pro", cfg.TextModel)
	require.Equal(t, "imagen-4.0-generate-001", cfg.ImageModel)
	require.Equal(t, 20*time.Millisecond, cfg.TypewriterInterval)
	require.Zero(t, cfg.RequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.ResolvedAPIKey())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("STORYBOX_HOME", home)
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("API_KEY", "fallback")
	t.Setenv("STORYBOX_TEXT_MODEL", "gemini-2.5-flash")
	t.Setenv("STORYBOX_TYPEWRITER_INTERVAL", "5ms")
	t.Setenv("STORYBOX_REQUEST_TIMEOUT", "90s")
	t.Setenv("STORYBOX_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "primary", cfg.ResolvedAPIKey())
	require.Equal(t, "gemini-2.5-flash", cfg.TextModel)
	require.Equal(t, 5*time.Millisecond, cfg.TypewriterInterval)
	require.Equal(t, 90*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, filepath.Join(home, "preferences.yaml"), cfg.PreferencesPath())
	require.Equal(t, filepath.Join(home, "storybox.log"), cfg.LogPath())
	require.Equal(t, filepath.Join(home, "illustrations"), cfg.ExportDir())
}

func TestLoadFallsBackToAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "  fallback  ")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fallback", cfg.ResolvedAPIKey())
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORYBOX_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)

	var validationErr *storyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "loglevel", validationErr.Field)
}

func TestLoadRejectsNonPositiveTypewriterInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORYBOX_TYPEWRITER_INTERVAL", "0s")

	_, err := Load()
	require.Error(t, err)
}
