package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/logtail"
	"github.com/five82/dex/internal/pokedex"
	"github.com/five82/dex/internal/prefs"
	"github.com/five82/dex/internal/state"
)

// Loader is the part of catalog.Loader the UI drives.
type Loader interface {
	Load(ctx context.Context, activation string) catalog.Result
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    Loader
	Store     *state.Store
	Logger    *zap.Logger
	Language  pokedex.Language
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    Loader
	store     *state.Store
	logger    *zap.Logger
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	spinner  spinner.Model

	// Data state
	snapshot state.Snapshot
	logLines []logtail.Entry

	// Catalog view state
	query     catalog.Query
	prefs     catalog.Preferences
	selection catalog.Selection
	visible   []pokedex.Pokemon
	cursor    int
	offset    int

	// Search input
	searching   bool
	searchInput textinput.Model

	// Detail overlay; non-nil while the selection is open
	detail Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	ti := textinput.New()
	ti.Placeholder = "Search by name..."
	ti.Prompt = "/"
	ti.CharLimit = 64

	return Model{
		ctx:         ctx,
		loader:      opts.Loader,
		store:       opts.Store,
		logger:      logging.OrNop(opts.Logger).Named("ui"),
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)))),
		prefs:       catalog.NewPreferences(opts.Language),
		searchInput: ti,
		visible:     []pokedex.Pokemon{},
	}
}

// Init implements tea.Model. It starts the one-shot catalog load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil && m.loader != nil {
		if token, ok := m.store.Begin(); ok {
			cmds = append(cmds, loadCatalogCmd(m.ctx, m.loader, token))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.searchInput.Width = max(m.width-20, 10)
		m.clampCursor()
		m.refreshDetail()
		return m, nil

	case spinner.TickMsg:
		if m.store != nil && !m.store.Snapshot().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case logTailMsg:
		m.logLines = msg.entries
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	if m.store == nil || !m.store.Finish(msg.token, msg.result) {
		m.logger.Debug("catalog result dropped",
			zap.String("activation", msg.token),
			zap.Bool("closed", m.store != nil && m.store.Closed()),
		)
		return m, nil
	}
	m.snapshot = m.store.Snapshot()
	m.recompute()

	if m.snapshot.Phase == state.PhaseFailed {
		return m, readLogTailCmd(m.logPath, failureLogLines)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	if m.detail != nil {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if !m.snapshot.Loaded() {
		return m, nil
	}
	return m.handleListKey(msg)
}

// handleListKey processes keys for the catalog list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleType):
		m.query.TypeID = catalog.NextType(m.query.TypeID, m.snapshot.Types)
		m.recompute()
	case key.Matches(msg, m.keys.CycleGen):
		m.query.Generation = catalog.NextGeneration(m.query.Generation, catalog.Generations(m.snapshot.Pokemon))
		m.recompute()
	case key.Matches(msg, m.keys.NextSort):
		m.query.Sort = m.query.Sort.Next()
		m.recompute()
	case key.Matches(msg, m.keys.PrevSort):
		m.query.Sort = m.query.Sort.Prev()
		m.recompute()
	case key.Matches(msg, m.keys.ResetQuery):
		m.query = catalog.Query{}
		m.searchInput.SetValue("")
		m.recompute()

	case key.Matches(msg, m.keys.ToggleLanguage):
		m.prefs.ToggleLanguage()
		m.recompute()
	case key.Matches(msg, m.keys.ToggleVariant):
		m.prefs.ToggleVariant()

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.highlighted(); ok {
			m.selection.Select(p)
			m.openDetail()
		}
	case key.Matches(msg, m.keys.Reopen):
		if m.selection.Reopen() {
			m.openDetail()
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.visible))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.visible))
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listRows())
	}
	return m, nil
}

// handleDetailKey processes keys while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		m.refreshDetail()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLanguage):
		m.prefs.ToggleLanguage()
		m.recompute()
		m.refreshDetail()
		return m, nil
	case key.Matches(msg, m.keys.ToggleVariant):
		m.prefs.ToggleVariant()
		m.refreshDetail()
		return m, nil
	}

	modal, cmd, closed := m.detail.Update(msg, m.keys)
	if closed {
		m.selection.Close()
		m.detail = nil
		return m, cmd
	}
	m.detail = modal
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// recompute derives the visible list from the snapshot and the current query,
// keeping the cursor on the same entity when it is still visible.
func (m *Model) recompute() {
	var highlightedID int
	if p, ok := m.highlighted(); ok {
		highlightedID = p.ID
	}

	m.visible = catalog.Apply(m.snapshot.Pokemon, m.query, m.prefs)

	if highlightedID != 0 {
		for i, p := range m.visible {
			if p.ID == highlightedID {
				m.cursor = i
				m.clampCursor()
				return
			}
		}
	}
	m.cursor = 0
	m.offset = 0
	m.clampCursor()
}

// highlighted returns the entity under the list cursor.
func (m Model) highlighted() (pokedex.Pokemon, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return pokedex.Pokemon{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor inside the list and scrolls it into view.
func (m *Model) clampCursor() {
	if len(m.visible) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.visible)-1)

	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.visible)-rows, 0))
}

// listRows is the number of entity rows that fit in the list box.
func (m Model) listRows() int {
	return max(m.contentHeight()-2, 1)
}

// contentHeight is the space below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-headerLines, 3)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent picks the body for the current load phase.
func (m Model) renderContent() string {
	switch m.snapshot.Phase {
	case state.PhaseFailed:
		return m.renderFailure()
	case state.PhaseReady:
		if m.detail != nil {
			return m.detail.View(m.theme, m.width, m.contentHeight())
		}
		return m.renderList()
	default:
		return m.renderLoading()
	}
}

// Messages

type catalogLoadedMsg struct {
	token  string
	result catalog.Result
}

type logTailMsg struct {
	entries []logtail.Entry
}

// Commands

func loadCatalogCmd(ctx context.Context, loader Loader, token string) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{token: token, result: loader.Load(ctx, token)}
	}
}

func readLogTailCmd(path string, lines int) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, lines)
		if err != nil {
			entries = []logtail.Entry{{Raw: "read log: " + err.Error()}}
		}
		return logTailMsg{entries: entries}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	var programOpts []tea.ProgramOption
	programOpts = append(programOpts, tea.WithAltScreen())
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
