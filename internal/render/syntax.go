package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/user/logview/internal/source"
	"github.com/user/logview/internal/view"
)

// DetailRenderer renders a single entry for the expanded detail view.
// Structured (JSON) message bodies are pretty-printed and syntax
// highlighted; anything else is shown as-is
type DetailRenderer struct {
	syntaxTheme string
}

// NewDetailRenderer creates a detail renderer
func NewDetailRenderer() *DetailRenderer {
	return &DetailRenderer{syntaxTheme: "monokai"}
}

// Render produces the detail block for an entry
func (r *DetailRenderer) Render(e source.Entry) string {
	var b strings.Builder
	b.WriteString(view.FormatEntry(e))

	body := extractJSON(e.Message)
	if body == "" {
		return b.String()
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(body), "", "  "); err != nil {
		return b.String()
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, pretty.String(), "json", "terminal16m", r.syntaxTheme); err != nil {
		b.WriteString("\n\n")
		b.WriteString(pretty.String())
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(buf.String())
	return b.String()
}

// extractJSON returns the trailing JSON object of a message, if any.
// Covers both fully structured lines and "text payload {...}" lines
func extractJSON(msg string) string {
	idx := strings.IndexByte(msg, '{')
	if idx < 0 {
		return ""
	}
	candidate := strings.TrimSpace(msg[idx:])
	if !json.Valid([]byte(candidate)) {
		return ""
	}
	return candidate
}
