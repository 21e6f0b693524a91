// Package gallery writes generated illustrations to disk.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/storybox/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

// Filename returns the export name for the illustration at zero-based
// position i, e.g. "illustration-1.jpg".
func Filename(i int, img story.Image) string {
	return fmt.Sprintf("illustration-%d%s", i+1, img.Extension())
}

// Save writes img into dir, creating dir if needed, and returns the path.
// An existing file with the same name is replaced.
func Save(dir string, i int, img story.Image) (string, error) {
	if len(img.Data) == 0 {
		return "", storyerrors.NewValidationError("image", "illustration has no data", nil)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", storyerrors.NewStorageError("mkdir", dir, err)
	}

	path := filepath.Join(dir, Filename(i, img))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, img.Data, 0o644); err != nil {
		return "", storyerrors.NewStorageError("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", storyerrors.NewStorageError("rename", path, err)
	}
	return path, nil
}

// SaveAll writes every illustration of result into dir in order.
func SaveAll(dir string, result story.Result) ([]string, error) {
	paths := make([]string, 0, result.ImageCount())
	for i, img := range result.Images() {
		path, err := Save(dir, i, img)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
