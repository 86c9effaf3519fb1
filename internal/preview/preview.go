// Package preview renders narrative markdown to HTML for the on-screen
// live preview. It is one-directional: the canonical markdown value is
// produced elsewhere and only displayed here.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates the markdown engine failed to produce HTML.
var ErrRender = errors.New("preview rendering failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
</head>
<body>
%s
</body>
</html>`

// Renderer converts markdown to preview HTML using goldmark (pure Go).
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions and syntax
// highlighting. Construct once at process start and share by reference;
// options are never mutated after construction.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.TabWidth(4),
					chromahtml.WithClasses(false), // inline styles: the preview page is standalone
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
