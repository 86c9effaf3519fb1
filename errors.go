package incidentreport

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Theme validation errors.
	ErrInvalidThemeColor = errors.New("invalid theme color")
	ErrInvalidThemeSize  = errors.New("invalid theme size")
)
