// Package markdown parses the restricted markdown dialect used by incident
// report narratives into blocks and styled text runs.
//
// The dialect covers ATX headings (levels 1-3), bullet items, numbered
// items, single-letter sub-items, and bold/italic emphasis. Everything else
// is plain paragraph text. Malformed input never fails to parse: unmatched
// delimiters stay in the output as literal characters.
package markdown

// Run is a contiguous span of text sharing one bold/italic style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// emphasis delimiter characters.
const delimiters = "*_"

// ParseInline splits one line of text into styled runs.
// Bold spans (** or __) are matched before italic spans (* or _) when both
// could start at the same offset. Among candidate spans, the one whose
// opening delimiter occurs earliest wins. Delimiters without a closing
// partner are kept as ordinary characters, so malformed emphasis degrades
// to literal text instead of an error.
// An empty line yields no runs.
func ParseInline(line string) []Run {
	if line == "" {
		return nil
	}

	var runs []Run
	rest := line
	for rest != "" {
		start, width, run, ok := nextSpan(rest)
		if !ok {
			runs = append(runs, Run{Text: rest})
			break
		}
		if start > 0 {
			runs = append(runs, Run{Text: rest[:start]})
		}
		runs = append(runs, run)
		rest = rest[start+width:]
	}
	return runs
}

// nextSpan finds the earliest emphasis span in s.
// Returns the span's byte offset, the total width consumed (delimiters
// included), and the styled run. Bold is attempted before italic at each
// offset, which makes bold win offset ties by construction.
func nextSpan(s string) (start, width int, run Run, ok bool) {
	for i := 0; i < len(s); i++ {
		if !isDelimiter(s[i]) {
			continue
		}
		if inner, w, found := matchBold(s, i); found {
			return i, w, Run{Text: inner, Bold: true}, true
		}
		if inner, w, found := matchItalic(s, i); found {
			return i, w, Run{Text: inner, Italic: true}, true
		}
	}
	return 0, 0, Run{}, false
}

// matchBold matches **text** or __text__ starting at offset i.
func matchBold(s string, i int) (inner string, width int, ok bool) {
	if i+1 >= len(s) || s[i+1] != s[i] {
		return "", 0, false
	}
	delim := s[i : i+2]
	end := indexFrom(s, delim, i+2)
	if end == -1 || end == i+2 {
		// No closing pair, or empty span (****): not a bold span here.
		return "", 0, false
	}
	inner = s[i+2 : end]
	return inner, len(inner) + 4, true
}

// matchItalic matches *text* or _text_ starting at offset i.
// The opening delimiter must not be flanked by a second copy of itself:
// ** is never consumed as two italic markers.
func matchItalic(s string, i int) (inner string, width int, ok bool) {
	c := s[i]
	if i+1 < len(s) && s[i+1] == c {
		return "", 0, false
	}
	if i > 0 && s[i-1] == c {
		return "", 0, false
	}
	for j := i + 1; j < len(s); j++ {
		if s[j] != c {
			continue
		}
		if j == i+1 {
			// Empty span.
			return "", 0, false
		}
		inner = s[i+1 : j]
		return inner, len(inner) + 2, true
	}
	return "", 0, false
}

// indexFrom returns the index of the first occurrence of sub in s at or
// after offset from, or -1.
func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// isDelimiter reports whether c is an emphasis delimiter character.
func isDelimiter(c byte) bool {
	return c == '*' || c == '_'
}
