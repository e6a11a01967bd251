package main

import (
	"errors"
	"os"

	nbcss "github.com/alnah/go-nbcss"
	"github.com/alnah/go-nbcss/internal/config"
)

// Exit codes for the nbcss CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Stylesheets collected
	ExitGeneral = 1 // General/unexpected error, including highlighter failures
	ExitUsage   = 2 // Invalid flags, environment, config, or validation
	ExitIO      = 3 // Output not writable, file not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, nbcss.ErrUnknownStyle) ||
		errors.Is(err, nbcss.ErrInvalidPrefix) ||
		errors.Is(err, nbcss.ErrInvalidCandidate) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
