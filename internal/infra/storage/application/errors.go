package application

import "errors"

var (
	// ErrBuildQuery is returned when the SQL query could not be built.
	ErrBuildQuery = errors.New("application storage: build query error")

	// ErrExecQuery is returned when the SQL query could not be executed.
	ErrExecQuery = errors.New("application storage: execute query error")

	// ErrScanRow is returned when a result row could not be scanned.
	ErrScanRow = errors.New("application storage: scan row error")

	// ErrApplicationNotFound is returned when no stored application
	// matches the lookup.
	ErrApplicationNotFound = errors.New("application storage: application not found")

	// ErrDuplicateApplication is returned when an application for the
	// session has already been stored.
	ErrDuplicateApplication = errors.New("application storage: application already exists for session")
)
