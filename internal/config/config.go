// Package config loads report field files and theme files from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrFileNotFound = errors.New("config file not found")
	ErrEmptyPath    = errors.New("config path cannot be empty")
	ErrParse        = errors.New("failed to parse config")
	ErrFieldTooLong = errors.New("field exceeds maximum length")
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// Field length limits for multi-tenant safety.
const (
	MaxNameLength       = 100   // Person or organization name
	MaxIDLength         = 50    // Employee ID
	MaxPositionLength   = 100   // Job title
	MaxDateLength       = 30    // "2025-12-31"
	MaxClockLength      = 10    // "14:30"
	MaxShortTextLength  = 500   // What/location, attachment lines, impact detail
	MaxNarrativeLength  = 50000 // Markdown narrative body
	MaxURLLength        = 2048  // Browser limit
	MaxCategoryLength   = 100   // Impact category label
	MaxAttachmentsCount = 50
	MaxImpactCategories = 20
)

// ReportFile is the on-disk report field set consumed by the CLI.
type ReportFile struct {
	Organization string            `yaml:"organization"`
	Prepared     string            `yaml:"prepared"` // YYYY-MM-DD
	Employee     EmployeeConfig    `yaml:"employee"`
	Incident     IncidentConfig    `yaml:"incident"`
	Details      string            `yaml:"details"`
	Findings     string            `yaml:"findings"`
	Policy       string            `yaml:"policyViolation"`
	Attachments  []AttachmentEntry `yaml:"attachments"`
	Impact       ImpactConfig      `yaml:"impact"`
	Signatories  SignatoriesConfig `yaml:"signatories"`
}

// EmployeeConfig identifies the employee the report concerns.
type EmployeeConfig struct {
	Name       string `yaml:"name"`
	ID         string `yaml:"id"`
	Position   string `yaml:"position"`
	Department string `yaml:"department"`
}

// IncidentConfig holds the what/where/when fields.
type IncidentConfig struct {
	What     string `yaml:"what"`
	Location string `yaml:"location"`
	Date     string `yaml:"date"`  // YYYY-MM-DD
	Clock    string `yaml:"clock"` // HH:MM
}

// AttachmentEntry is one supporting item.
type AttachmentEntry struct {
	NameOrLink  string `yaml:"name"`
	Description string `yaml:"description"`
}

// ImpactConfig records impacted parties.
type ImpactConfig struct {
	Categories  []string `yaml:"categories"`
	OtherDetail string   `yaml:"otherDetail"`
}

// SignatoriesConfig holds the two signatory roles. Attested is optional.
type SignatoriesConfig struct {
	Prepared SignatoryConfig  `yaml:"prepared"`
	Attested *SignatoryConfig `yaml:"attested"`
}

// SignatoryConfig is a name/position pair.
type SignatoryConfig struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
}

// ThemeFile is the on-disk theme consumed by the CLI.
// Zero values fall back to the library defaults.
type ThemeFile struct {
	BaseSize float64 `yaml:"baseSize"`
	H1Size   float64 `yaml:"h1Size"`
	H2Size   float64 `yaml:"h2Size"`
	H3Size   float64 `yaml:"h3Size"`

	BaseColor   string `yaml:"baseColor"`
	MutedColor  string `yaml:"mutedColor"`
	AccentColor string `yaml:"accentColor"`
	HeaderFill  string `yaml:"headerFill"`

	ListIndent    float64 `yaml:"listIndent"`
	SubItemIndent float64 `yaml:"subItemIndent"`
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadReport, but available for consumers who
// construct a ReportFile manually.
func (r *ReportFile) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"organization", r.Organization, MaxNameLength},
		{"prepared", r.Prepared, MaxDateLength},
		{"employee.name", r.Employee.Name, MaxNameLength},
		{"employee.id", r.Employee.ID, MaxIDLength},
		{"employee.position", r.Employee.Position, MaxPositionLength},
		{"employee.department", r.Employee.Department, MaxPositionLength},
		{"incident.what", r.Incident.What, MaxShortTextLength},
		{"incident.location", r.Incident.Location, MaxShortTextLength},
		{"incident.date", r.Incident.Date, MaxDateLength},
		{"incident.clock", r.Incident.Clock, MaxClockLength},
		{"details", r.Details, MaxNarrativeLength},
		{"findings", r.Findings, MaxNarrativeLength},
		{"policyViolation", r.Policy, MaxNarrativeLength},
		{"impact.otherDetail", r.Impact.OtherDetail, MaxShortTextLength},
		{"signatories.prepared.name", r.Signatories.Prepared.Name, MaxNameLength},
		{"signatories.prepared.position", r.Signatories.Prepared.Position, MaxPositionLength},
	}
	for _, c := range checks {
		if err := validateFieldLength(c.name, c.value, c.max); err != nil {
			return err
		}
	}

	if len(r.Attachments) > MaxAttachmentsCount {
		return fmt.Errorf("attachments: too many entries (%d, max %d)", len(r.Attachments), MaxAttachmentsCount)
	}
	for i, att := range r.Attachments {
		if err := validateFieldLength(fmt.Sprintf("attachments[%d].name", i), att.NameOrLink, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("attachments[%d].description", i), att.Description, MaxShortTextLength); err != nil {
			return err
		}
	}

	if len(r.Impact.Categories) > MaxImpactCategories {
		return fmt.Errorf("impact.categories: too many entries (%d, max %d)", len(r.Impact.Categories), MaxImpactCategories)
	}
	for i, cat := range r.Impact.Categories {
		if err := validateFieldLength(fmt.Sprintf("impact.categories[%d]", i), cat, MaxCategoryLength); err != nil {
			return err
		}
	}

	if r.Signatories.Attested != nil {
		if err := validateFieldLength("signatories.attested.name", r.Signatories.Attested.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength("signatories.attested.position", r.Signatories.Attested.Position, MaxPositionLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadReport loads and validates a report field file.
func LoadReport(path string) (*ReportFile, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var report ReportFile
	if err := unmarshalStrict(data, &report); err != nil {
		return nil, err
	}

	if err := report.Validate(); err != nil {
		return nil, err
	}
	return &report, nil
}

// LoadTheme loads a theme file. If path contains no path separator it is
// treated as a name and searched in the current directory and the user
// config directory (~/.config/go-incidentreport/).
func LoadTheme(path string) (*ThemeFile, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if !isFilePath(path) {
		resolved, err := resolveThemePath(path)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var theme ThemeFile
	if err := unmarshalStrict(data, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// readConfigFile reads a config file with size limits applied.
func readConfigFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrParse, path, MaxInputSize)
	}
	return data, nil
}

// unmarshalStrict rejects unknown fields in the input.
func unmarshalStrict(data []byte, v any) error {
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveThemePath searches for a theme file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-incidentreport/
func resolveThemePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-incidentreport", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrFileNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
