package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore()

	logPath := filepath.Join(dir, "bench.log")
	if err := os.WriteFile(logPath, []byte("Go:\n"), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}

	got, err := store.ReadLog(ctx, logPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Go:\n" {
		t.Errorf("expected log content, got %q", got)
	}

	docPath := DocumentPath(logPath, "readme.md")
	if docPath != filepath.Join(dir, "readme.md") {
		t.Errorf("unexpected document path %s", docPath)
	}

	if err := store.WriteDocument(ctx, docPath, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(docPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != defaultFileMode {
		t.Errorf("expected mode %v, got %v", os.FileMode(defaultFileMode), info.Mode().Perm())
	}

	if err := os.Chmod(docPath, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if err := store.WriteDocument(ctx, docPath, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := store.ReadDocument(ctx, docPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != "second" {
		t.Errorf("expected rewritten document, got %q", doc)
	}
	info, _ = os.Stat(docPath)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected preserved mode 0600, got %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestFileStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore()
	missing := filepath.Join(t.TempDir(), "missing.log")

	if _, err := store.ReadLog(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.ReadDocument(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_WriteFailure(t *testing.T) {
	store := NewFileStore(WithFileMode(0o600))
	path := filepath.Join(t.TempDir(), "no-such-dir", "readme.md")

	if err := store.WriteDocument(context.Background(), path, "x"); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
}
