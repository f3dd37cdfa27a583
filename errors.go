package peblgen

import "errors"

// Sentinel errors for library operations.
var (
	// Path errors.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrSamePaths       = errors.New("output and backup paths must differ")

	// Input validation errors.
	ErrInvalidEntry = errors.New("invalid timesheet entry")
	ErrInvalidTitle = errors.New("invalid title")
	ErrTooManyItems = errors.New("too many timesheet entries")

	// Rendering errors.
	ErrRender          = errors.New("timesheet rendering failed")
	ErrNotesConversion = errors.New("notes conversion failed")

	// Write errors.
	ErrBackup      = errors.New("backup failed")
	ErrWriteOutput = errors.New("writing output failed")
)
