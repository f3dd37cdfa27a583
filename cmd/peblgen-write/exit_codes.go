package main

import (
	"errors"
	"os"

	peblgen "github.com/christian-pebl/PEBLgen"
	"github.com/christian-pebl/PEBLgen/internal/assets"
	"github.com/christian-pebl/PEBLgen/internal/config"
	"github.com/christian-pebl/PEBLgen/internal/dateutil"
)

// Exit codes for peblgen-write.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Timesheet written (or dry run completed)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It relies on errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, peblgen.ErrBackup) ||
		errors.Is(err, peblgen.ErrWriteOutput) ||
		errors.Is(err, ErrReadNotes) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrSamePaths) ||
		errors.Is(err, peblgen.ErrEmptyOutputPath) ||
		errors.Is(err, peblgen.ErrSamePaths) ||
		errors.Is(err, peblgen.ErrInvalidEntry) ||
		errors.Is(err, peblgen.ErrInvalidTitle) ||
		errors.Is(err, peblgen.ErrTooManyItems) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
