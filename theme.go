package incidentreport

import (
	"fmt"
	"regexp"
)

// hexColor matches #RGB and #RRGGBB values.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme resolves block kinds to concrete visual attributes.
// Construct once and pass by reference; a Theme is never mutated after
// construction.
type Theme struct {
	BaseSize float64 // points, paragraph text
	H1Size   float64
	H2Size   float64
	H3Size   float64

	BaseColor   string // hex, body text
	MutedColor  string // hex, placeholders
	AccentColor string // hex, headings and table header text
	HeaderFill  string // hex, table header cell shading

	ListIndent    float64 // points, ordered items
	SubItemIndent float64 // points, lettered sub-items
}

// DefaultTheme returns the standard report styling.
func DefaultTheme() *Theme {
	return &Theme{
		BaseSize: 10,
		H1Size:   16,
		H2Size:   13,
		H3Size:   11,

		BaseColor:   "#1f2933",
		MutedColor:  "#9aa5b1",
		AccentColor: "#1f4e79",
		HeaderFill:  "#d9e2f3",

		ListIndent:    12,
		SubItemIndent: 24,
	}
}

// Validate checks that colors are hex values and sizes are positive.
// Returns nil if t is nil (nil means use defaults).
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}

	colors := []struct {
		name  string
		value string
	}{
		{"base", t.BaseColor},
		{"muted", t.MutedColor},
		{"accent", t.AccentColor},
		{"headerFill", t.HeaderFill},
	}
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidThemeColor, c.name, c.value)
		}
	}

	sizes := []struct {
		name  string
		value float64
	}{
		{"base", t.BaseSize},
		{"h1", t.H1Size},
		{"h2", t.H2Size},
		{"h3", t.H3Size},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%w: %s %.2f", ErrInvalidThemeSize, s.name, s.value)
		}
	}

	return nil
}
