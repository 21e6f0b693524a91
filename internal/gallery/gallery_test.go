package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storybox/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "illustration-1.jpg", Filename(0, story.Image{MIMEType: "image/jpeg"}))
	require.Equal(t, "illustration-3.png", Filename(2, story.Image{MIMEType: "image/png"}))
}

func TestSaveCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "illustrations")
	path, err := Save(dir, 1, story.Image{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "illustration-2.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xd8}, data)
}

func TestSaveRejectsEmptyImage(t *testing.T) {
	t.Parallel()

	_, err := Save(t.TempDir(), 0, story.Image{MIMEType: "image/jpeg"})
	var validationErr *storyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSaveReportsStorageErrors(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Save(filepath.Join(blocker, "sub"), 0, story.Image{MIMEType: "image/jpeg", Data: []byte{1}})
	var storageErr *storyerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "mkdir", storageErr.Op)
}

func TestSaveAll(t *testing.T) {
	t.Parallel()

	result, err := story.NewResult("story", []story.Image{
		{MIMEType: "image/jpeg", Data: []byte{1}},
		{MIMEType: "image/jpeg", Data: []byte{2}},
	})
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := SaveAll(dir, result)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "illustration-1.jpg"),
		filepath.Join(dir, "illustration-2.jpg"),
	}, paths)
}
