package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// URLPrefix is the public path under which stored uploads are referenced.
const URLPrefix = "/static/uploads"

// Store writes uploads into a single flat directory. Saving a name that
// already exists replaces the previous file.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the upload directory if it is missing.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Save writes r to the directory under name, which must already be
// sanitized, and returns the written path. A partially written file is
// removed when copying fails.
func (s *Store) Save(r io.Reader, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid upload name %q", name)
	}

	filePath := filepath.Join(s.dir, name)
	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close destination file: %w", err)
	}

	return filePath, nil
}

// URL returns the public reference for a stored name.
func URL(name string) string {
	return path.Join(URLPrefix, name)
}
