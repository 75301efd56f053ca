package repository

import "errors"

// Sentinel kinds for file access errors.
var (
	ErrNotFound    = errors.New("file not found")
	ErrWriteFailed = errors.New("write failed")
)
