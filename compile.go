package incidentreport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-incidentreport/internal/markdown"
)

// placeholderText fills a narrative slot that has no content. Every slot in
// the final document must render something.
const placeholderText = "No content provided."

// crlfOrCR normalizes Windows and legacy Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Heading spacing in points, indexed by level minus one.
var (
	headingSpaceBefore = [3]float64{14, 12, 10}
	headingSpaceAfter  = [3]float64{8, 6, 4}
)

// List and paragraph spacing in points.
const (
	listSpaceAfter      = 2
	paragraphSpaceAfter = 6
	blankSpaceAfter     = 6
)

// CompileMarkdown compiles markdown text into rendered blocks using the
// default theme. It never fails: malformed lines degrade to paragraphs and
// empty input yields a single placeholder block, so the result is never
// empty.
func CompileMarkdown(text string) []RenderedBlock {
	return compileMarkdown(text, DefaultTheme())
}

// compileMarkdown is the theme-aware compiler behind CompileMarkdown.
func compileMarkdown(text string, theme *Theme) []RenderedBlock {
	if strings.TrimSpace(text) == "" {
		return []RenderedBlock{placeholderBlock(theme)}
	}

	text = crlfOrCR.ReplaceAllString(text, "\n")
	lines := strings.Split(text, "\n")

	blocks := make([]RenderedBlock, 0, len(lines))
	counter := 0
	for _, line := range lines {
		var block markdown.Block
		block, counter = markdown.ClassifyLine(line, counter)
		blocks = append(blocks, renderBlock(block, theme))
	}
	return blocks
}

// placeholderBlock carries the fixed muted-italic "no content" styling.
func placeholderBlock(theme *Theme) RenderedBlock {
	return RenderedBlock{
		Runs:       []Run{{Text: placeholderText, Italic: true, Color: theme.MutedColor}},
		Size:       theme.BaseSize,
		Color:      theme.MutedColor,
		SpaceAfter: paragraphSpaceAfter,
	}
}

// renderBlock maps one classified block to its rendered form.
func renderBlock(block markdown.Block, theme *Theme) RenderedBlock {
	switch block.Kind {
	case markdown.Heading1, markdown.Heading2, markdown.Heading3:
		return renderHeading(block, theme)

	case markdown.Bullet:
		return RenderedBlock{
			Runs:       contentRuns(block.Content),
			Size:       theme.BaseSize,
			Color:      theme.BaseColor,
			SpaceAfter: listSpaceAfter,
			Bullet:     true,
		}

	case markdown.Ordered:
		runs := append([]Run{{Text: fmt.Sprintf("%d. ", block.Ordinal), Bold: true}}, contentRuns(block.Content)...)
		return RenderedBlock{
			Runs:       runs,
			Size:       theme.BaseSize,
			Color:      theme.BaseColor,
			Indent:     theme.ListIndent,
			SpaceAfter: listSpaceAfter,
		}

	case markdown.LetteredSub:
		runs := append([]Run{{Text: fmt.Sprintf("%c. ", block.Letter)}}, contentRuns(block.Content)...)
		return RenderedBlock{
			Runs:       runs,
			Size:       theme.BaseSize,
			Color:      theme.BaseColor,
			Indent:     theme.SubItemIndent,
			SpaceAfter: listSpaceAfter,
		}

	case markdown.Blank:
		return RenderedBlock{
			Size:       theme.BaseSize,
			Color:      theme.BaseColor,
			SpaceAfter: blankSpaceAfter,
		}
	}

	return RenderedBlock{
		Runs:       contentRuns(block.Content),
		Size:       theme.BaseSize,
		Color:      theme.BaseColor,
		SpaceAfter: paragraphSpaceAfter,
	}
}

// renderHeading resolves heading size and spacing by level.
func renderHeading(block markdown.Block, theme *Theme) RenderedBlock {
	level := 1
	size := theme.H1Size
	switch block.Kind {
	case markdown.Heading2:
		level, size = 2, theme.H2Size
	case markdown.Heading3:
		level, size = 3, theme.H3Size
	}
	return RenderedBlock{
		Runs:        contentRuns(block.Content),
		Size:        size,
		Color:       theme.AccentColor,
		SpaceBefore: headingSpaceBefore[level-1],
		SpaceAfter:  headingSpaceAfter[level-1],
	}
}

// contentRuns converts parsed inline runs to styled runs.
// Run colors inherit from the block.
func contentRuns(content []markdown.Run) []Run {
	if len(content) == 0 {
		return nil
	}
	runs := make([]Run, len(content))
	for i, r := range content {
		runs[i] = Run{Text: r.Text, Bold: r.Bold, Italic: r.Italic}
	}
	return runs
}
