package markdown

import "testing"

// ---------------------------------------------------------------------------
// TestClassifyLine - kind precedence
// ---------------------------------------------------------------------------

func TestClassifyLine_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want BlockKind
	}{
		{"empty line", "", Blank},
		{"whitespace only", "   \t", Blank},
		{"heading 1", "# Overview", Heading1},
		{"heading 2", "## Findings", Heading2},
		{"heading 3", "### Detail", Heading3},
		{"heading wins over ordered", "# 1. Team", Heading1},
		{"heading 2 wins over lettered", "## a. item", Heading2},
		{"dash bullet", "- first", Bullet},
		{"star bullet", "* second", Bullet},
		{"ordered item", "1. step", Ordered},
		{"multi-digit ordered item", "12. step", Ordered},
		{"lettered dot", "a. sub", LetteredSub},
		{"lettered paren", "b) sub", LetteredSub},
		{"uppercase lettered", "C. sub", LetteredSub},
		{"plain paragraph", "just text", Paragraph},
		{"hash without space is paragraph", "#nospace", Paragraph},
		{"number without dot is paragraph", "5 items", Paragraph},
		{"dot without trailing space is paragraph", "1.nospace", Paragraph},
		{"two letters are paragraph", "ab. text", Paragraph},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, _ := ClassifyLine(tt.line, 0)
			if block.Kind != tt.want {
				t.Errorf("ClassifyLine(%q) kind = %v, want %v", tt.line, block.Kind, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassifyLine - content extraction
// ---------------------------------------------------------------------------

func TestClassifyLine_Content(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantText string
	}{
		{"heading strips marker", "# Overview", "Overview"},
		{"bullet strips marker", "- first item", "first item"},
		{"ordered strips digits and dot", "3. the step", "the step"},
		{"lettered strips letter", "a. the sub", "the sub"},
		{"paragraph keeps full line", "plain line", "plain line"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, _ := ClassifyLine(tt.line, 0)
			got := ""
			for _, r := range block.Content {
				got += r.Text
			}
			if got != tt.wantText {
				t.Errorf("ClassifyLine(%q) content = %q, want %q", tt.line, got, tt.wantText)
			}
		})
	}
}

func TestClassifyLine_BlankHasNoContent(t *testing.T) {
	t.Parallel()

	block, _ := ClassifyLine("   ", 3)
	if len(block.Content) != 0 {
		t.Errorf("blank block content = %+v, want none", block.Content)
	}
}

func TestClassifyLine_LetterLowercased(t *testing.T) {
	t.Parallel()

	block, _ := ClassifyLine("B) item", 0)
	if block.Letter != 'b' {
		t.Errorf("letter = %c, want b", block.Letter)
	}
}

// ---------------------------------------------------------------------------
// TestClassifyLine - ordered-list counter
// ---------------------------------------------------------------------------

func TestClassifyLine_CounterIgnoresSourceDigits(t *testing.T) {
	t.Parallel()

	// A source line numbered "5." immediately after a "1." renders as "2.".
	block, counter := ClassifyLine("1. first", 0)
	if block.Ordinal != 1 || counter != 1 {
		t.Fatalf("first item ordinal = %d, counter = %d, want 1, 1", block.Ordinal, counter)
	}

	block, counter = ClassifyLine("5. second", counter)
	if block.Ordinal != 2 || counter != 2 {
		t.Errorf("second item ordinal = %d, counter = %d, want 2, 2", block.Ordinal, counter)
	}
}

func TestClassifyLine_CounterResets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		interruptor string
	}{
		{"bullet resets", "- x"},
		{"blank resets", ""},
		{"heading resets", "# Title"},
		{"paragraph resets", "plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, counter := ClassifyLine("1. A", 0)
			_, counter = ClassifyLine(tt.interruptor, counter)
			block, _ := ClassifyLine("1. B", counter)
			if block.Ordinal != 1 {
				t.Errorf("ordinal after %q = %d, want 1 (numbering restarts)", tt.interruptor, block.Ordinal)
			}
		})
	}
}

func TestClassifyLine_LetteredSubPreservesCounter(t *testing.T) {
	t.Parallel()

	// A lettered sub-item belongs to the surrounding ordered list, so the
	// counter continues across it.
	_, counter := ClassifyLine("1. first", 0)
	_, counter = ClassifyLine("a. detail", counter)
	block, _ := ClassifyLine("2. second", counter)
	if block.Ordinal != 2 {
		t.Errorf("ordinal after lettered sub = %d, want 2 (counter preserved)", block.Ordinal)
	}
}
