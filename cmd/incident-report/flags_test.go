package main

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-incidentreport/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{
			name: "defaults",
			args: []string{"incident-report"},
			want: cliFlags{},
		},
		{
			name: "short flags",
			args: []string{"incident-report", "-r", "report.yaml", "-o", "out.pdf", "-v"},
			want: cliFlags{report: "report.yaml", out: "out.pdf", verbose: true},
		},
		{
			name: "long flags",
			args: []string{"incident-report", "--report", "r.yaml", "--html", "--timeout", "45s"},
			want: cliFlags{report: "r.yaml", htmlOnly: true, timeout: 45 * time.Second},
		},
		{
			name: "preview field",
			args: []string{"incident-report", "-r", "r.yaml", "--preview", "findings"},
			want: cliFlags{report: "r.yaml", preview: "findings"},
		},
		{
			name: "theme and logo",
			args: []string{"incident-report", "-r", "r.yaml", "--theme", "corporate", "--logo-url", "https://example.com/logo.png"},
			want: cliFlags{report: "r.yaml", theme: "corporate", logoURL: "https://example.com/logo.png"},
		},
		{
			name: "version",
			args: []string{"incident-report", "--version"},
			want: cliFlags{version: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v): %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
		})
	}
}

func TestParseFlags_InvalidPreviewField(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"summary", "Details", "all"} {
		_, err := parseFlags([]string{"incident-report", "--preview", field})
		if !errors.Is(err, ErrInvalidPreviewField) {
			t.Errorf("parseFlags(--preview %s) error = %v, want %v", field, err, ErrInvalidPreviewField)
		}
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"incident-report", "--no-such-flag"}); err == nil {
		t.Error("parseFlags accepted an unknown flag")
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags cliFlags
		want  string
	}{
		{"explicit out wins", cliFlags{report: "r.yaml", out: "custom.pdf"}, "custom.pdf"},
		{"pdf next to report", cliFlags{report: "dir/r.yaml"}, "dir/r.pdf"},
		{"html extension", cliFlags{report: "r.yaml", htmlOnly: true}, "r.html"},
		{"report without extension", cliFlags{report: "report"}, "report.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(&tt.flags); got != tt.want {
				t.Errorf("resolveOutputPath(%+v) = %q, want %q", tt.flags, got, tt.want)
			}
		})
	}
}

func TestToTheme_ZeroValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	theme := toTheme(&config.ThemeFile{BaseSize: 12, AccentColor: "#123456"})

	if theme.BaseSize != 12 {
		t.Errorf("baseSize = %v, want override 12", theme.BaseSize)
	}
	if theme.AccentColor != "#123456" {
		t.Errorf("accentColor = %q, want override", theme.AccentColor)
	}

	defaults := *toTheme(&config.ThemeFile{})
	if defaults.H1Size == 0 || defaults.MutedColor == "" || defaults.ListIndent == 0 {
		t.Errorf("zero theme file did not apply defaults: %+v", defaults)
	}
	if err := defaults.Validate(); err != nil {
		t.Errorf("defaulted theme invalid: %v", err)
	}
}
