package markdown

import (
	"regexp"
	"strings"
)

// BlockKind classifies one line of markdown input.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading1
	Heading2
	Heading3
	Bullet
	Ordered
	LetteredSub
	Blank
)

// String returns the kind name for diagnostics and test output.
func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case Heading3:
		return "heading3"
	case Bullet:
		return "bullet"
	case Ordered:
		return "ordered"
	case LetteredSub:
		return "letteredsub"
	case Blank:
		return "blank"
	}
	return "unknown"
}

// Block is one classified unit of markdown input.
type Block struct {
	Kind    BlockKind
	Content []Run
	Ordinal int  // meaningful for Ordered only
	Letter  byte // meaningful for LetteredSub only, always lowercase
}

// Precompiled line patterns.
var (
	orderedItem  = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	letteredItem = regexp.MustCompile(`^([a-zA-Z])[.)]\s+(.*)$`)
)

// ClassifyLine classifies one line and threads the ordered-list counter.
// The counter is an explicit accumulator: callers pass the value returned
// by the previous call and start at 0.
//
// Ordered items take their ordinal from the counter, never from the digits
// in the source line, so numbering restarts at 1 after any interruption.
// A lettered sub-item preserves the counter; every other non-ordered kind
// resets it.
func ClassifyLine(line string, counter int) (Block, int) {
	if strings.TrimSpace(line) == "" {
		return Block{Kind: Blank}, 0
	}

	// Headings win over list markers: "# 1. Team" is a heading.
	if rest, ok := strings.CutPrefix(line, "### "); ok {
		return Block{Kind: Heading3, Content: ParseInline(rest)}, 0
	}
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return Block{Kind: Heading2, Content: ParseInline(rest)}, 0
	}
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return Block{Kind: Heading1, Content: ParseInline(rest)}, 0
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Block{Kind: Bullet, Content: ParseInline(line[2:])}, 0
	}

	if m := orderedItem.FindStringSubmatch(line); m != nil {
		next := counter + 1
		return Block{Kind: Ordered, Content: ParseInline(m[2]), Ordinal: next}, next
	}

	if m := letteredItem.FindStringSubmatch(line); m != nil {
		letter := strings.ToLower(m[1])[0]
		return Block{Kind: LetteredSub, Content: ParseInline(m[2]), Letter: letter}, counter
	}

	return Block{Kind: Paragraph, Content: ParseInline(line)}, 0
}
