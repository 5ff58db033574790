package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/search"
	"github.com/user/logview/internal/source"
	"github.com/user/logview/pkg/logformat"
)

// RowRenderer styles a single log row: timestamp column, level badge,
// and the message with active search matches emphasized
type RowRenderer struct {
	styles      map[source.Level]lipgloss.Style
	timeStyle   lipgloss.Style
	matchStyle  lipgloss.Style
	cursorStyle lipgloss.Style
}

// NewRowRenderer creates a renderer with config colors
func NewRowRenderer(cfg *config.Config) *RowRenderer {
	styles := map[source.Level]lipgloss.Style{
		source.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Debug)),
		source.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Info)),
		source.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Warn)),
		source.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Levels.Error)).Bold(true),
	}

	return &RowRenderer{
		styles:      styles,
		timeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Timestamp)),
		matchStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.SearchMatch)).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.CursorLine)).Bold(true),
	}
}

// Render styles one entry. query emphasizes matching message runs;
// selected marks the marker cursor row
func (r *RowRenderer) Render(e source.Entry, query string, selected bool) string {
	var b strings.Builder

	prefix := "  "
	if selected {
		prefix = r.cursorStyle.Render("> ")
	}
	b.WriteString(prefix)

	b.WriteString(r.timeStyle.Render(logformat.FormatTime(e.Timestamp)))
	b.WriteString(" ")

	levelStyle := r.styles[e.Level]
	b.WriteString(levelStyle.Render(padLevel(e.Level.String())))
	b.WriteString(" ")

	for _, span := range search.Highlight(e.Message, query) {
		if span.Matched {
			b.WriteString(r.matchStyle.Render(span.Text))
		} else {
			b.WriteString(levelStyle.Render(span.Text))
		}
	}

	return b.String()
}

func padLevel(s string) string {
	// Longest level name is 5 runes ("DEBUG", "ERROR")
	for len(s) < 5 {
		s += " "
	}
	return s
}
