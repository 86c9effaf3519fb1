package preview

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "heading",
			content: "# Incident Summary",
			want:    []string{"<h1", "Incident Summary</h1>"},
		},
		{
			name:    "emphasis",
			content: "**bold** and *italic*",
			want:    []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:    "gfm table",
			content: "| A | B |\n|---|---|\n| 1 | 2 |",
			want:    []string{"<table>", "<td>1</td>"},
		},
		{
			name:    "empty content still yields a document",
			content: "",
			want:    []string{"<!DOCTYPE html>", "</html>"},
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html, err := r.Render(context.Background(), tt.content)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, fragment := range tt.want {
				if !strings.Contains(html, fragment) {
					t.Errorf("output missing %q:\n%s", fragment, html)
				}
			}
		})
	}
}

func TestRender_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, "# heading")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render error = %v, want context.Canceled", err)
	}
}

func TestRender_SharedRendererIsReusable(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	for _, content := range []string{"first", "## second", "- third"} {
		if _, err := r.Render(context.Background(), content); err != nil {
			t.Fatalf("Render(%q): %v", content, err)
		}
	}
}
