package ask

import "errors"

var (
	// ErrAborted signals the user ended input (Ctrl+C or end of stream).
	ErrAborted = errors.New("ask: aborted")
	// ErrNoDriver is returned when an Asker has no driver to read from.
	ErrNoDriver = errors.New("ask: prompt driver is nil")
)
