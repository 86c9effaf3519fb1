package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	ErrLogoFetch    = errors.New("logo fetch failed")
	ErrLogoTooLarge = errors.New("logo exceeds maximum size")
	ErrLogoNotImage = errors.New("logo is not an image")
)
