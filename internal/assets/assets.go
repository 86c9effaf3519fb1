// Package assets provides embedded serialization assets and the
// best-effort logotype fetcher used during template assembly.
package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// BaseStyle returns the embedded base stylesheet for HTML serialization.
// Theme-derived rules are appended by the caller.
func BaseStyle() (string, error) {
	content, err := styles.ReadFile("styles/report.css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, "report")
	}
	return string(content), nil
}

// PageTemplate returns the embedded HTML page skeleton.
func PageTemplate() (string, error) {
	content, err := templates.ReadFile("templates/page.html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, "page")
	}
	return string(content), nil
}
