// Package highscore persists the best score as a single integer in a text file.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is where the high score lives unless overridden.
const DefaultPath = "~/.uffo/highscore.txt"

// ErrCorrupt is returned by Load when the file does not hold a non-negative integer.
var ErrCorrupt = errors.New("highscore: corrupt file")

// FileStore reads and writes the high score file.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path. A leading ~ is expanded to the
// user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score. A missing file yields 0 and no error;
// an unreadable or corrupt file yields 0 and the error so the caller can log it.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s: %q", ErrCorrupt, s.path, strings.TrimSpace(string(data)))
	}
	return score, nil
}

// Save overwrites the file with score, creating parent directories.
// The file is replaced atomically so a crash never leaves it half written.
func (s *FileStore) Save(score int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := fmt.Fprintf(tmp, "%d\n", score); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}
