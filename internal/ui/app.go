package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/export"
	"github.com/user/logview/internal/render"
	"github.com/user/logview/internal/source"
	"github.com/user/logview/internal/view"
	"github.com/user/logview/internal/watch"
	"github.com/user/logview/pkg/logformat"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeDetail
)

// Options configures a viewer model. The callbacks are capabilities:
// leaving one nil simply disables that affordance
type Options struct {
	Filepath       string
	Follow         bool
	OnStreamToggle func(next bool)
	OnCopyFiltered func(filtered []source.Entry)
}

// entryMsg delivers one tailed entry into the update loop
type entryMsg source.Entry

// streamClosedMsg signals the follower channel ended
type streamClosedMsg struct{}

// Model is the main application model
type Model struct {
	cfg      *config.Config
	viewport *view.Viewport
	rows     *render.RowRenderer
	detail   *render.DetailRenderer
	exporter *export.Writer

	searchInput textinput.Model
	mode        Mode
	width       int
	height      int

	// Level filter cycle position: 0 = all, then debug..error
	levelCycle int

	// Streaming state. While streaming is off, tailed entries buffer in
	// pending and land as a single batch on resume
	liveEnabled bool
	streaming   bool
	entries     <-chan source.Entry
	cancel      context.CancelFunc
	pending     []source.Entry

	onStreamToggle func(bool)
	onCopy         func([]source.Entry)

	filename string
	status   string
}

// NewModel creates the viewer model, loading any existing file backlog
// and starting the follower when requested
func NewModel(opts Options, cfg *config.Config) (*Model, error) {
	vp := view.NewViewport(1, 22, cfg.Viewer.Overscan, cfg.Viewer.PinTolerance)

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 256

	m := &Model{
		cfg:            cfg,
		viewport:       vp,
		rows:           render.NewRowRenderer(cfg),
		detail:         render.NewDetailRenderer(),
		exporter:       export.NewWriter(),
		searchInput:    ti,
		mode:           ModeNormal,
		liveEnabled:    opts.Follow,
		streaming:      opts.Follow,
		onStreamToggle: opts.OnStreamToggle,
		onCopy:         opts.OnCopyFiltered,
	}

	if opts.Filepath == "" {
		return m, nil
	}
	m.filename = filepath.Base(opts.Filepath)

	detector := logformat.NewLevelDetector(&cfg.LogLevels)
	parser := watch.NewParser(opts.Filepath, detector)

	backlog, consumed, err := watch.LoadBacklog(opts.Filepath, parser)
	if err != nil {
		return nil, err
	}
	vp.Append(backlog...)

	if opts.Follow {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := watch.Follow(ctx, opts.Filepath, consumed, parser)
		if err != nil {
			cancel()
			return nil, err
		}
		m.entries = ch
		m.cancel = cancel
	}

	return m, nil
}

// Close stops the follower
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.entries == nil {
		return nil
	}
	return waitForEntry(m.entries)
}

func waitForEntry(ch <-chan source.Entry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return entryMsg(e)
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve 2 lines for status bar and help
		m.viewport.SetSize(msg.Height - 2)
		return m, nil

	case entryMsg:
		if m.streaming {
			m.viewport.Append(source.Entry(msg))
		} else {
			m.pending = append(m.pending, source.Entry(msg))
		}
		return m, waitForEntry(m.entries)

	case streamClosedMsg:
		m.streaming = false
		m.entries = nil
		return m, nil
	}

	return m, nil
}

func matches(msg tea.KeyMsg, keys []string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeSearch {
		return m.handleSearchKey(msg)
	}
	if m.mode == ModeDetail {
		return m.handleDetailKey(msg)
	}

	keys := m.cfg.Keybindings
	switch {
	case matches(msg, keys.Quit):
		return m, tea.Quit

	case matches(msg, keys.ScrollDown):
		m.viewport.ScrollBy(1)
	case matches(msg, keys.ScrollUp):
		m.viewport.ScrollBy(-1)
	case matches(msg, keys.PageDown):
		m.viewport.PageBy(1)
	case matches(msg, keys.PageUp):
		m.viewport.PageBy(-1)
	case matches(msg, keys.Top):
		m.viewport.ScrollTo(0)
	case matches(msg, keys.Bottom):
		m.viewport.ScrollToTail()

	case matches(msg, keys.FocusSearch):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.viewport.Filtered().Query())
		m.searchInput.Focus()
		return m, textinput.Blink

	case matches(msg, keys.TogglePin):
		if m.viewport.TogglePinned() {
			m.status = "tailing"
		} else {
			m.status = "tailing off"
		}

	case matches(msg, keys.NextMarker):
		if m.viewport.JumpToMarker(view.Forward) < 0 {
			m.status = "no marker below"
		} else {
			m.status = ""
		}
	case matches(msg, keys.PrevMarker):
		if m.viewport.JumpToMarker(view.Backward) < 0 {
			m.status = "no marker above"
		} else {
			m.status = ""
		}

	case matches(msg, keys.CycleLevel):
		m.cycleLevelFilter()

	case matches(msg, keys.CopyFiltered):
		m.copyFiltered()

	case matches(msg, keys.WriteFile):
		m.writeFiltered()

	case matches(msg, keys.RangeStart):
		m.boundRange(true)
	case matches(msg, keys.RangeEnd):
		m.boundRange(false)
	case matches(msg, keys.RangeReset):
		m.viewport.ResetTimeRange()
		m.status = "range reset"

	case matches(msg, keys.ToggleStream):
		m.toggleStream()

	case matches(msg, keys.Detail):
		if m.viewport.Cursor() >= 0 {
			m.mode = ModeDetail
		}

	case msg.String() == "esc":
		m.viewport.ClearCursor()
		m.status = ""
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchInput.SetValue("")
		m.viewport.SetQuery("")
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Filter as the query is typed
	m.viewport.SetQuery(m.searchInput.Value())
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = ModeNormal
	}
	return m, nil
}

// cycleLevelFilter walks all -> debug -> info -> warn -> error -> all
func (m *Model) cycleLevelFilter() {
	m.levelCycle = (m.levelCycle + 1) % 5
	if m.levelCycle == 0 {
		m.viewport.SetLevelFilter(source.AllLevels())
	} else {
		m.viewport.SetLevelFilter(source.OnlyLevel(source.Level(m.levelCycle - 1)))
	}
}

func (m *Model) copyFiltered() {
	text := m.viewport.ExportText()
	if text == "" {
		m.status = "nothing to copy"
		return
	}
	// Clipboard denial is a host concern, never a viewer fault
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "clipboard unavailable"
	} else {
		m.status = fmt.Sprintf("copied %d entries", m.viewport.Filtered().Len())
	}
	if m.onCopy != nil {
		m.onCopy(m.viewport.Filtered().Entries())
	}
}

func (m *Model) writeFiltered() {
	path, err := m.exporter.WriteFiltered(m.viewport.Filtered().Entries())
	if err != nil {
		m.status = "nothing to export"
		return
	}
	m.status = "wrote " + path
}

// boundRange fixes one end of the time range at the selected entry, or
// at the edge of the materialized window when nothing is selected
func (m *Model) boundRange(start bool) {
	idx := m.viewport.Cursor()
	if idx < 0 {
		w, entries := m.viewport.Visible()
		if len(entries) == 0 {
			return
		}
		if start {
			idx = w.Start
		} else {
			idx = w.Start + len(entries) - 1
		}
	}
	ts := m.viewport.Filtered().At(idx).Timestamp

	if start {
		m.viewport.SetTimeStart(ts)
		m.status = "range start " + logformat.FormatTime(ts)
	} else {
		m.viewport.SetTimeEnd(ts)
		m.status = "range end " + logformat.FormatTime(ts)
	}
}

func (m *Model) toggleStream() {
	if !m.liveEnabled {
		return
	}
	m.streaming = !m.streaming
	if m.streaming && len(m.pending) > 0 {
		// Everything missed while paused lands as one batch
		m.viewport.Append(m.pending...)
		m.pending = nil
	}
	if m.onStreamToggle != nil {
		m.onStreamToggle(m.streaming)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.mode == ModeDetail {
		return m.detailView()
	}

	var builder strings.Builder

	if m.viewport.Store().Len() == 0 {
		builder.WriteString(m.emptyView())
	} else {
		builder.WriteString(m.contentView())
	}
	builder.WriteString("\n")

	builder.WriteString(m.statusBar())
	builder.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	help := "j/k:scroll  f:search  e:level  l:tail  ]/[:markers  t/T:range  c:copy  w:write  q:quit"
	builder.WriteString(helpStyle.Render(help))

	return builder.String()
}

func (m *Model) contentView() string {
	contentHeight := m.contentHeight()
	_, entries := m.viewport.Visible()

	// The window carries overscan rows; a terminal surface only draws
	// the rows that fit
	if len(entries) > contentHeight {
		entries = entries[:contentHeight]
	}

	w := m.viewport.Window()
	query := m.viewport.Filtered().Query()
	cursor := m.viewport.Cursor()

	var builder strings.Builder
	for i, e := range entries {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(m.rows.Render(e, query, w.Start+i == cursor))
	}

	for i := len(entries); i < contentHeight; i++ {
		if i > 0 || len(entries) > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("~")
	}

	return builder.String()
}

func (m *Model) emptyView() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lines := []string{"", "  No log entries yet."}
	if m.liveEnabled {
		state := "paused"
		if m.streaming {
			state = "streaming"
		}
		lines = append(lines, fmt.Sprintf("  Live stream %s - press s to toggle.", state))
	}
	for len(lines) < m.contentHeight() {
		lines = append(lines, "~")
	}
	return dim.Render(strings.Join(lines, "\n"))
}

func (m *Model) detailView() string {
	cursor := m.viewport.Cursor()
	if cursor < 0 || cursor >= m.viewport.Filtered().Len() {
		return "no entry selected\n\nesc:back"
	}

	var builder strings.Builder
	builder.WriteString(m.detail.Render(m.viewport.Filtered().At(cursor)))
	builder.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	builder.WriteString(helpStyle.Render("esc:back"))
	return builder.String()
}

func (m *Model) statusBar() string {
	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.cfg.Theme.StatusBar)).
		Foreground(lipgloss.Color(m.cfg.Theme.StatusBarText)).
		Width(m.width)

	if m.mode == ModeSearch {
		return statusStyle.Render("/" + m.searchInput.View())
	}

	filtered := m.viewport.Filtered()
	counts := fmt.Sprintf("%d/%d", filtered.Len(), m.viewport.Store().Len())

	var flags []string
	if m.viewport.Pinned() {
		flags = append(flags, "TAIL")
	}
	if m.liveEnabled && !m.streaming {
		flags = append(flags, "PAUSED")
	}
	if !filtered.LevelFilter().IsAll() {
		flags = append(flags, filtered.LevelFilter().Level().String())
	}
	if filtered.Query() != "" {
		flags = append(flags, "/"+filtered.Query())
	}

	parts := []string{" " + m.filename, counts}
	if len(flags) > 0 {
		parts = append(parts, "["+strings.Join(flags, " ")+"]")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m *Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 22
	}
	return h
}

// Viewport exposes the core for the host and for tests
func (m *Model) Viewport() *view.Viewport {
	return m.viewport
}

// Streaming reports whether live entries are being displayed
func (m *Model) Streaming() bool {
	return m.streaming
}
