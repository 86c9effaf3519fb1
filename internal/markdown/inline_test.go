package markdown

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Run
	}{
		{
			name: "empty line yields no runs",
			line: "",
			want: nil,
		},
		{
			name: "plain text yields one run equal to input",
			line: "no delimiters here",
			want: []Run{{Text: "no delimiters here"}},
		},
		{
			name: "bold with asterisks",
			line: "**bold**",
			want: []Run{{Text: "bold", Bold: true}},
		},
		{
			name: "bold with underscores",
			line: "__bold__",
			want: []Run{{Text: "bold", Bold: true}},
		},
		{
			name: "italic with asterisk",
			line: "*italic*",
			want: []Run{{Text: "italic", Italic: true}},
		},
		{
			name: "italic with underscore",
			line: "_italic_",
			want: []Run{{Text: "italic", Italic: true}},
		},
		{
			name: "bold precedes italic at equal offset",
			line: "**bold** and *italic*",
			want: []Run{
				{Text: "bold", Bold: true},
				{Text: " and "},
				{Text: "italic", Italic: true},
			},
		},
		{
			name: "italic before bold in source order",
			line: "*first* then **second**",
			want: []Run{
				{Text: "first", Italic: true},
				{Text: " then "},
				{Text: "second", Bold: true},
			},
		},
		{
			name: "text before and after span",
			line: "a *b* c",
			want: []Run{
				{Text: "a "},
				{Text: "b", Italic: true},
				{Text: " c"},
			},
		},
		{
			name: "unmatched bold opener is literal",
			line: "**abc",
			want: []Run{{Text: "**abc"}},
		},
		{
			name: "unmatched italic opener is literal",
			line: "a * b",
			want: []Run{{Text: "a * b"}},
		},
		{
			name: "only delimiters yields single plain run",
			line: "***",
			want: []Run{{Text: "***"}},
		},
		{
			name: "double delimiter never consumed as two italics",
			line: "**not closed",
			want: []Run{{Text: "**not closed"}},
		},
		{
			name: "empty bold span is literal",
			line: "****",
			want: []Run{{Text: "****"}},
		},
		{
			name: "empty italic span is literal",
			line: "**",
			want: []Run{{Text: "**"}},
		},
		{
			name: "adjacent bold then italic",
			line: "**bold***italic*",
			want: []Run{
				{Text: "bold", Bold: true},
				{Text: "italic", Italic: true},
			},
		},
		{
			name: "underscore inside word is a span",
			line: "a_b_c",
			want: []Run{
				{Text: "a"},
				{Text: "b", Italic: true},
				{Text: "c"},
			},
		},
		{
			name: "mixed delimiters do not pair",
			line: "*mixed_",
			want: []Run{{Text: "*mixed_"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseInline(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseInline_RoundTripPlainText(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Incident occurred at the loading dock.",
		"No action required",
		"2024-03-15 14:30",
	}
	for _, line := range lines {
		runs := ParseInline(line)
		if len(runs) != 1 {
			t.Fatalf("ParseInline(%q) = %d runs, want 1", line, len(runs))
		}
		if runs[0].Text != line || runs[0].Bold || runs[0].Italic {
			t.Errorf("ParseInline(%q) = %+v, want single plain run", line, runs[0])
		}
	}
}
