package core

import "errors"

// Serialization errors. All of them are terminal for the current run - either
// the full document is produced or the run fails.
var (
	// ErrUnsupportedFormat flags an unknown format selector.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrNonFiniteNumber flags a NaN or infinite float targeting JSON, which
	// has no literal for non-finite numbers.
	ErrNonFiniteNumber = errors.New("non-finite number has no JSON representation")

	// ErrColumnCountMismatch flags a row whose width disagrees with the header.
	ErrColumnCountMismatch = errors.New("row width does not match header")
)
