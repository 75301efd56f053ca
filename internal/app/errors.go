package service

import (
	"errors"

	"github.com/okian/benchtable/internal/adapters/document"
	"github.com/okian/benchtable/internal/adapters/repository"
	"github.com/okian/benchtable/internal/domain/parser"
	"github.com/okian/benchtable/internal/domain/ranking"
)

// Error kinds a report cycle can end with. All of them abort the cycle
// before the document is written.
var (
	ErrMissingArgument  = errors.New("missing log file argument")
	ErrFileNotFound     = repository.ErrNotFound
	ErrInsufficientData = ranking.ErrInsufficientData
	ErrMissingMarker    = document.ErrMissingMarker
	ErrMalformedValue   = parser.ErrMalformedValue
)

// outcome maps a cycle error to a metrics label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingArgument):
		return "missing_argument"
	case errors.Is(err, ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrMissingMarker):
		return "missing_marker"
	case errors.Is(err, ErrMalformedValue):
		return "malformed_value"
	default:
		return "error"
	}
}
