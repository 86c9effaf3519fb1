package main

import (
	"errors"
	"os"

	incidentreport "github.com/alnah/go-incidentreport"
	"github.com/alnah/go-incidentreport/internal/config"
)

// Exit codes for the incident-report CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Report generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, incidentreport.ErrBrowserConnect) ||
		errors.Is(err, incidentreport.ErrPageCreate) ||
		errors.Is(err, incidentreport.ErrPageLoad) ||
		errors.Is(err, incidentreport.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoReport) ||
		errors.Is(err, ErrInvalidPreviewField) ||
		errors.Is(err, config.ErrFileNotFound) ||
		errors.Is(err, config.ErrEmptyPath) ||
		errors.Is(err, config.ErrParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, incidentreport.ErrInvalidThemeColor) ||
		errors.Is(err, incidentreport.ErrInvalidThemeSize) {
		return ExitUsage
	}

	return ExitGeneral
}
