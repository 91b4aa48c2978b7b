package model

import "errors"

// ErrNotFound means no portfolio document has been persisted yet.
// Callers typically fall back to the built-in default document.
var ErrNotFound = errors.New("portfolio data not found")
