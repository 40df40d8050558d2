package variables

import "errors"

var (
	// ErrSourceNotFound is returned when a source file is missing or a remote
	// source could not be fetched.
	ErrSourceNotFound = errors.New("source not found")
	// ErrUnsupportedFormat is returned when explicitly requested format is
	// neither css nor scss.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
