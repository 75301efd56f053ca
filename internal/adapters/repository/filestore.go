package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultFileMode = 0o644

// FileStore implements Store on the local filesystem.
type FileStore struct {
	mode os.FileMode
}

// NewFileStore creates a FileStore.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{mode: defaultFileMode}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadLog reads the log at path.
func (s *FileStore) ReadLog(_ context.Context, path string) (string, error) {
	return read(path)
}

// ReadDocument reads the document at path.
func (s *FileStore) ReadDocument(_ context.Context, path string) (string, error) {
	return read(path)
}

func read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteDocument writes content to a temp file next to path and renames it
// over path, so readers never see a partial document. An existing file's
// mode is preserved.
func (s *FileStore) WriteDocument(_ context.Context, path, content string) error {
	mode := s.mode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
