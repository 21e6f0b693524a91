package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

func TestFileStoreMissingFileDefaultsToDark(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "preferences.yaml"))
	p, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Dark, p)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.Save(Light))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "theme: light")
	require.Contains(t, string(data), "version:")

	p, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, Light, p)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFileFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "theme: [unterminated"},
		{name: "unknown theme", content: "version: \"1\"\ntheme: sepia\n"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "preferences.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			p, err := NewFileStore(path).Load()
			require.Error(t, err)
			require.Equal(t, Dark, p)

			var storageErr *storyerrors.StorageError
			require.ErrorAs(t, err, &storageErr)
		})
	}
}

func TestFileStoreRejectsUnknownPreference(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "preferences.yaml"))
	err := store.Save(Preference("sepia"))

	var validationErr *storyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParsePreference(t *testing.T) {
	t.Parallel()

	p, err := ParsePreference(" LIGHT ")
	require.NoError(t, err)
	require.Equal(t, Light, p)

	_, err = ParsePreference("sepia")
	require.Error(t, err)

	require.Equal(t, Dark, Light.Toggled())
	require.Equal(t, Light, Dark.Toggled())
}
