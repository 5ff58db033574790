package search

import "strings"

// Span is a run of text with a match flag
type Span struct {
	Text    string
	Matched bool
}

// Highlight splits text around case-insensitive occurrences of query.
// The query is always literal, so characters that would be special in a
// pattern syntax match themselves. Concatenating the returned spans
// reproduces text exactly; an empty query yields one unmatched span.
//
// Offsets are found on lowercased copies but spans are cut from the
// original string, so the coverage guarantee holds even when case
// folding changes byte lengths
func Highlight(text, query string) []Span {
	if query == "" || text == "" {
		return []Span{{Text: text}}
	}

	lower := strings.ToLower(text)
	needle := strings.ToLower(query)

	spans := make([]Span, 0, 4)
	pos := 0
	for pos < len(lower) {
		idx := strings.Index(lower[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		if start > len(text) {
			start = len(text)
		}
		end := start + len(needle)
		if end > len(text) {
			end = len(text)
		}
		if start > pos {
			spans = append(spans, Span{Text: text[pos:start]})
		}
		spans = append(spans, Span{Text: text[start:end], Matched: true})
		pos = end
	}
	if pos < len(text) {
		spans = append(spans, Span{Text: text[pos:]})
	}
	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}

// HasMatch reports whether text contains query case-insensitively
func HasMatch(text, query string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
