package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/logging"
	"github.com/five82/clusterfav/internal/prefs"
)

// inputMode identifies what the text prompt is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputNewGroup
	inputRename
	inputCluster
)

// Options configures the UI.
type Options struct {
	Store     *favorites.Store
	ThemeName string
	PrefsPath string
}

// Result is what the page returns when it exits.
type Result struct {
	// Selected is the favorite chosen with enter, nil when the user quit.
	Selected *favorites.FavoriteItem
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *favorites.Store
	sub       favorites.Subscription
	keys      keyMap
	prefsPath string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string
	failed   bool

	// Data state
	menu   favorites.Menu
	rows   []favorites.MenuRow
	cursor int
	list   viewport.Model

	// Prompt state
	mode   inputMode
	target string
	input  textinput.Model

	selected *favorites.FavoriteItem
}

// New creates a new Bubble Tea model. The model subscribes to store changes
// until the program exits.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	ti := textinput.New()
	ti.CharLimit = 120

	m := Model{
		store:     opts.Store,
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(themeName),
		input:     ti,
		list:      viewport.New(0, 0),
	}
	if m.store != nil {
		m.sub = m.store.Subscribe()
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.sub)
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
		m.resizeList()
		return m, nil

	case changeMsg:
		m.refresh()
		return m, waitForChange(m.sub)

	case subscriptionClosedMsg:
		return m, tea.Quit

	case saveErrMsg:
		m.setStatus(fmt.Sprintf("save failed: %v", msg.err), true)
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

// Result returns the outcome of the session.
func (m Model) Result() Result {
	return Result{Selected: m.selected}
}

// Run starts the favorites page and blocks until the user quits, selects a
// favorite, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Store == nil {
		return Result{}, fmt.Errorf("ui requires a favorites store")
	}

	model := New(opts)
	defer opts.Store.Unsubscribe(model.sub)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("run ui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	if fm.selected != nil {
		log := logging.WithComponent("ui")
		log.Debug().Str("id", fm.selected.ID).Msg("favorite selected")
	}
	return fm.Result(), nil
}

// refresh rebuilds the menu from the store and clamps the cursor.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.menu = m.store.Menu()
	m.rows = m.menu.Rows()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncList()
}

// selectRow moves the cursor to the row holding the given item or group id.
func (m *Model) selectRow(id string) {
	for i, row := range m.rows {
		if row.Kind == favorites.RowItem && row.Item.ID == id ||
			row.Kind == favorites.RowGroup && row.Group.ID == id {
			m.cursor = i
			m.syncList()
			return
		}
	}
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (favorites.MenuRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return favorites.MenuRow{}, false
	}
	return m.rows[m.cursor], true
}

// setStatus shows a one-line message in the footer.
func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// savePrefs applies fn to the stored preferences. Failures only reach the log.
func (m Model) savePrefs(fn func(*prefs.Prefs)) {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Update(m.prefsPath, fn); err != nil {
		log := logging.WithComponent("ui")
		log.Warn().Err(err).Msg("save prefs")
	}
}
