package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	incidentreport "github.com/alnah/go-incidentreport"
	"github.com/alnah/go-incidentreport/internal/config"
	"github.com/alnah/go-incidentreport/internal/preview"
)

// Sentinel errors for CLI operations.
var (
	ErrNoReport            = errors.New("no report file specified")
	ErrInvalidPreviewField = errors.New("invalid preview field")
	ErrWriteOutput         = errors.New("failed to write output file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// run executes one generation request.
func run(flags *cliFlags) error {
	if flags.version {
		fmt.Println("incident-report " + Version)
		return nil
	}

	if flags.report == "" {
		return ErrNoReport
	}

	report, err := config.LoadReport(flags.report)
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}
	fields := toReportFields(report)

	if flags.preview != "" {
		return runPreview(flags, fields)
	}

	opts, err := serviceOptions(flags)
	if err != nil {
		return err
	}

	svc, err := incidentreport.NewService(opts...)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck // browser shutdown failure is not actionable here

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Generating report from %s\n", flags.report)
	}

	ctx := context.Background()
	outPath := resolveOutputPath(flags)

	if flags.htmlOnly {
		result, err := svc.GenerateHTML(ctx, fields)
		if err != nil {
			return err
		}
		return writeOutput(outPath, result.HTML, flags.verbose)
	}

	result, err := svc.Generate(ctx, fields)
	if err != nil {
		return err
	}
	return writeOutput(outPath, result.PDF, flags.verbose)
}

// runPreview renders one narrative field to preview HTML on stdout.
func runPreview(flags *cliFlags, fields incidentreport.ReportFields) error {
	var narrative string
	switch flags.preview {
	case previewDetails:
		narrative = fields.Details
	case previewFindings:
		narrative = fields.Findings
	case previewPolicy:
		narrative = fields.PolicyViolation
	}

	html, err := preview.NewRenderer().Render(context.Background(), narrative)
	if err != nil {
		return err
	}

	if flags.out != "" {
		return writeOutput(flags.out, []byte(html), flags.verbose)
	}
	fmt.Println(html)
	return nil
}

// serviceOptions builds service options from flags.
func serviceOptions(flags *cliFlags) ([]incidentreport.Option, error) {
	var opts []incidentreport.Option

	if flags.timeout > 0 {
		opts = append(opts, incidentreport.WithTimeout(flags.timeout))
	}
	if flags.logoURL != "" {
		opts = append(opts, incidentreport.WithLogoURL(flags.logoURL))
	}
	if flags.theme != "" {
		themeFile, err := config.LoadTheme(flags.theme)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		opts = append(opts, incidentreport.WithTheme(toTheme(themeFile)))
	}

	return opts, nil
}

// resolveOutputPath picks the output file: the --out flag, or the report
// file's name with the target extension.
func resolveOutputPath(flags *cliFlags) string {
	if flags.out != "" {
		return flags.out
	}
	ext := ".pdf"
	if flags.htmlOnly {
		ext = ".html"
	}
	base := strings.TrimSuffix(flags.report, filepath.Ext(flags.report))
	return base + ext
}

// writeOutput writes the artifact and reports the path under --verbose.
func writeOutput(path string, data []byte, verbose bool) error {
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", path, len(data))
	}
	return nil
}

// toReportFields maps the on-disk report file to library field types.
func toReportFields(r *config.ReportFile) incidentreport.ReportFields {
	attachments := make([]incidentreport.Attachment, len(r.Attachments))
	for i, att := range r.Attachments {
		attachments[i] = incidentreport.Attachment{
			NameOrLink:  att.NameOrLink,
			Description: att.Description,
		}
	}

	var attested *incidentreport.Signatory
	if r.Signatories.Attested != nil {
		attested = &incidentreport.Signatory{
			Name:     r.Signatories.Attested.Name,
			Position: r.Signatories.Attested.Position,
		}
	}

	return incidentreport.ReportFields{
		Organization: r.Organization,
		PreparedDate: r.Prepared,
		Employee: incidentreport.Employee{
			Name:       r.Employee.Name,
			ID:         r.Employee.ID,
			Position:   r.Employee.Position,
			Department: r.Employee.Department,
		},
		Incident: incidentreport.IncidentCore{
			What:     r.Incident.What,
			Location: r.Incident.Location,
			Date:     r.Incident.Date,
			Clock:    r.Incident.Clock,
		},
		Details:         r.Details,
		Findings:        r.Findings,
		PolicyViolation: r.Policy,
		Attachments:     attachments,
		Impact: incidentreport.Impact{
			Categories:  r.Impact.Categories,
			OtherDetail: r.Impact.OtherDetail,
		},
		PreparedBy: incidentreport.Signatory{
			Name:     r.Signatories.Prepared.Name,
			Position: r.Signatories.Prepared.Position,
		},
		AttestedBy: attested,
	}
}

// toTheme maps a theme file to a Theme, falling back to defaults for zero
// values.
func toTheme(f *config.ThemeFile) *incidentreport.Theme {
	theme := incidentreport.DefaultTheme()

	if f.BaseSize > 0 {
		theme.BaseSize = f.BaseSize
	}
	if f.H1Size > 0 {
		theme.H1Size = f.H1Size
	}
	if f.H2Size > 0 {
		theme.H2Size = f.H2Size
	}
	if f.H3Size > 0 {
		theme.H3Size = f.H3Size
	}
	if f.BaseColor != "" {
		theme.BaseColor = f.BaseColor
	}
	if f.MutedColor != "" {
		theme.MutedColor = f.MutedColor
	}
	if f.AccentColor != "" {
		theme.AccentColor = f.AccentColor
	}
	if f.HeaderFill != "" {
		theme.HeaderFill = f.HeaderFill
	}
	if f.ListIndent > 0 {
		theme.ListIndent = f.ListIndent
	}
	if f.SubItemIndent > 0 {
		theme.SubItemIndent = f.SubItemIndent
	}

	return theme
}
