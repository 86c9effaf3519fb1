package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	report   string
	out      string
	htmlOnly bool
	preview  string
	theme    string
	logoURL  string
	timeout  time.Duration
	verbose  bool
	version  bool
}

// narrative field names accepted by --preview.
const (
	previewDetails  = "details"
	previewFindings = "findings"
	previewPolicy   = "policy"
)

// parseFlags parses command-line arguments.
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("incident-report", flag.ContinueOnError)
	fs.StringVarP(&flags.report, "report", "r", "", "report field file (YAML)")
	fs.StringVarP(&flags.out, "out", "o", "", "output file (default: report PDF next to the field file)")
	fs.BoolVar(&flags.htmlOnly, "html", false, "write HTML instead of PDF")
	fs.StringVar(&flags.preview, "preview", "", "render one narrative field to preview HTML (details, findings, policy)")
	fs.StringVar(&flags.theme, "theme", "", "theme file or name")
	fs.StringVar(&flags.logoURL, "logo-url", "", "organization logotype URL (best-effort fetch)")
	fs.DurationVar(&flags.timeout, "timeout", 0, "PDF rendering timeout (default 30s)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	switch flags.preview {
	case "", previewDetails, previewFindings, previewPolicy:
	default:
		return nil, fmt.Errorf("%w: %q (must be %s, %s, or %s)",
			ErrInvalidPreviewField, flags.preview, previewDetails, previewFindings, previewPolicy)
	}

	return flags, nil
}
