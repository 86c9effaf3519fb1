package incidentreport

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-incidentreport/internal/assets"
)

// htmlRenderer serializes a ReportDocument into a standalone HTML page.
// The page is the input for PDF rendering and for acceptance diffing.
type htmlRenderer struct {
	theme *Theme
	tmpl  *template.Template
}

// pageData feeds the embedded page skeleton.
type pageData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// newHTMLRenderer creates a renderer for the given theme.
// Panics if the embedded page template cannot be loaded or parsed
// (programmer error).
func newHTMLRenderer(theme *Theme) *htmlRenderer {
	content, err := assets.PageTemplate()
	if err != nil {
		panic("failed to load page template: " + err.Error())
	}
	tmpl, err := template.New("page").Parse(content)
	if err != nil {
		panic("failed to parse page template: " + err.Error())
	}
	return &htmlRenderer{theme: theme, tmpl: tmpl}
}

// Render serializes the document. The document is read, never mutated.
func (r *htmlRenderer) Render(doc *ReportDocument) ([]byte, error) {
	var body strings.Builder
	r.writeTitle(&body, doc.Title)
	for _, section := range doc.Sections {
		r.writeSection(&body, section)
	}

	css, err := assets.BaseStyle()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	css += buildThemeCSS(r.theme)

	var out bytes.Buffer
	data := pageData{
		Title: doc.Title.Heading,
		CSS:   template.CSS(css),            // #nosec G203 -- embedded stylesheet plus validated theme values
		Body:  template.HTML(body.String()), // #nosec G203 -- built from escaped fragments below
	}
	if err := r.tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return out.Bytes(), nil
}

// writeTitle renders the logotype image or the wordmark fallback.
func (r *htmlRenderer) writeTitle(w *strings.Builder, title TitleBlock) {
	w.WriteString(`<header class="title">`)
	if title.Logo != nil {
		fmt.Fprintf(w, `<img class="logo" src="data:%s;base64,%s" alt="logo">`,
			html.EscapeString(title.Logo.MIME),
			base64.StdEncoding.EncodeToString(title.Logo.Data))
	} else {
		w.WriteString(`<div class="wordmark">`)
		writeRuns(w, title.Wordmark, "")
		w.WriteString(`</div>`)
	}
	fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(title.Heading))
	w.WriteString("</header>\n")
}

// writeSection renders one titled table or narrative box.
func (r *htmlRenderer) writeSection(w *strings.Builder, section Section) {
	w.WriteString("<section>")
	fmt.Fprintf(w, "<h2>%s</h2>", html.EscapeString(section.Title))

	switch section.Kind {
	case SectionTable:
		r.writeTable(w, section.Table)
	case SectionNarrative:
		w.WriteString(`<div class="box">`)
		for _, block := range section.Blocks {
			r.writeBlock(w, block)
		}
		w.WriteString(`</div>`)
	}

	w.WriteString("</section>\n")
}

// writeTable renders a key/value or signatory grid.
func (r *htmlRenderer) writeTable(w *strings.Builder, table *Table) {
	if table == nil {
		return
	}
	w.WriteString(`<table class="kv">`)
	for _, row := range table.Rows {
		w.WriteString("<tr>")
		for _, cell := range row.Cells {
			class := ""
			switch {
			case cell.Header:
				class = ` class="header"`
			case cell.Muted:
				class = ` class="muted"`
			}
			fmt.Fprintf(w, "<td%s>", class)
			for i, line := range cell.Lines {
				if i > 0 {
					w.WriteString("<br>")
				}
				w.WriteString(html.EscapeString(line))
			}
			w.WriteString("</td>")
		}
		w.WriteString("</tr>")
	}
	w.WriteString("</table>")
}

// writeBlock renders one styled paragraph. The bullet glyph is supplied
// here via CSS, not baked into the text runs.
func (r *htmlRenderer) writeBlock(w *strings.Builder, block RenderedBlock) {
	style := fmt.Sprintf("font-size:%.4gpt;color:%s;margin:%.4gpt 0 %.4gpt %.4gpt",
		block.Size, block.Color, block.SpaceBefore, block.SpaceAfter, block.Indent)

	if len(block.Runs) == 0 {
		// Blank block: spacing only.
		fmt.Fprintf(w, `<p style="%s">&nbsp;</p>`, style)
		return
	}

	class := ""
	if block.Bullet {
		class = ` class="bullet"`
	}
	fmt.Fprintf(w, `<p%s style="%s">`, class, style)
	writeRuns(w, block.Runs, block.Color)
	w.WriteString("</p>")
}

// writeRuns renders styled runs, escaping text content.
func writeRuns(w *strings.Builder, runs []Run, blockColor string) {
	for _, run := range runs {
		text := html.EscapeString(run.Text)
		if run.Bold {
			text = "<strong>" + text + "</strong>"
		}
		if run.Italic {
			text = "<em>" + text + "</em>"
		}
		if run.Color != "" && run.Color != blockColor {
			text = fmt.Sprintf(`<span style="color:%s">%s</span>`, html.EscapeString(run.Color), text)
		}
		w.WriteString(text)
	}
}

// buildThemeCSS derives stylesheet rules from the theme. Appended after
// the embedded base stylesheet so themes can override it.
func buildThemeCSS(t *Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nbody{color:%s;font-size:%.4gpt}\n", t.BaseColor, t.BaseSize)
	fmt.Fprintf(&b, "h1{color:%s;font-size:%.4gpt}\n", t.AccentColor, t.H1Size)
	fmt.Fprintf(&b, "h2{color:%s;font-size:%.4gpt}\n", t.AccentColor, t.H2Size)
	fmt.Fprintf(&b, "header.title .wordmark{color:%s}\n", t.AccentColor)
	fmt.Fprintf(&b, "table.kv td.header{background:%s;color:%s;font-weight:600;width:30%%}\n", t.HeaderFill, t.AccentColor)
	fmt.Fprintf(&b, ".muted{color:%s;font-style:italic}\n", t.MutedColor)
	return b.String()
}
