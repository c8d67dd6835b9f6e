package service

import "errors"

var (
	// ErrInvalidInput rejects bad catalog or settings input before anything
	// is written.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an unresolvable cup or drink id.
	ErrNotFound = errors.New("not found")

	// ErrNoCupsAvailable is returned when cup coverage is requested against
	// an empty catalog.
	ErrNoCupsAvailable = errors.New("no cups available")
)
