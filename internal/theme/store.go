package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

const fileVersion = "1"

// Store reads and writes the persisted preference.
type Store interface {
	Load() (Preference, error)
	Save(Preference) error
}

type preferencesFile struct {
	Version string     `yaml:"version"`
	Theme   Preference `yaml:"theme"`
}

// FileStore keeps the preference in a small YAML file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by path. The file and its directory
// are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the persisted preference. A missing file yields Default with no
// error; an unreadable or unrecognised file yields Default with an error.
func (s *FileStore) Load() (Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default, nil
		}
		return Default, storyerrors.NewStorageError("read", s.path, err)
	}

	var file preferencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Default, storyerrors.NewStorageError("parse", s.path, err)
	}
	if !file.Theme.Valid() {
		return Default, storyerrors.NewStorageError("parse", s.path, fmt.Errorf("unknown theme %q", file.Theme))
	}
	return file.Theme, nil
}

// Save writes p atomically.
func (s *FileStore) Save(p Preference) error {
	if !p.Valid() {
		return storyerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", p), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storyerrors.NewStorageError("mkdir", filepath.Dir(s.path), err)
	}

	data, err := yaml.Marshal(preferencesFile{Version: fileVersion, Theme: p})
	if err != nil {
		return storyerrors.NewStorageError("marshal", s.path, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return storyerrors.NewStorageError("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return storyerrors.NewStorageError("rename", s.path, err)
	}
	return nil
}
