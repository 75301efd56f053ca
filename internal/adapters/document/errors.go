package document

import "errors"

// ErrMissingMarker is returned when the document lacks the separator row or
// the details line that bound the replaceable region.
var ErrMissingMarker = errors.New("replacement markers not found")
