package parser

import "errors"

// ErrMalformedValue marks a time or memory line whose number does not parse.
var ErrMalformedValue = errors.New("malformed measurement value")
