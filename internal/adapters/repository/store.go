// Package repository reads benchmark logs and reads/writes the target document.
package repository

import (
	"context"
	"path/filepath"
)

// Store provides access to the log and the document patched next to it.
type Store interface {
	// ReadLog returns the whole log. Returns ErrNotFound if it does not exist.
	ReadLog(ctx context.Context, path string) (string, error)

	// ReadDocument returns the whole document. Returns ErrNotFound if it does not exist.
	ReadDocument(ctx context.Context, path string) (string, error)

	// WriteDocument replaces the document in one step.
	WriteDocument(ctx context.Context, path, content string) error
}

// DocumentPath returns the path of the document named name in the log's directory.
func DocumentPath(logPath, name string) string {
	return filepath.Join(filepath.Dir(logPath), name)
}
