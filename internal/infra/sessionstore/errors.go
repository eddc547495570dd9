package sessionstore

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for the ID.
	ErrSessionNotFound = errors.New("sessionstore: session not found")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("sessionstore: internal error")
)
