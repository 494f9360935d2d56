package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bedboard/internal/prefs"
	"github.com/five82/bedboard/internal/rooms"
	"github.com/five82/bedboard/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewRooms View = iota
	ViewLogs
)

// Session is the part of the fetch session the UI drives.
type Session interface {
	Refresh(ctx context.Context) bool
	SetInterval(minutes int) int
	Interval() int
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   Session
	Store     *state.Store
	Filter    rooms.Filter
	ThemeName string
	PrefsPath string // empty disables saving
	LogPath   string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   Session
	store     *state.Store
	prefsPath string
	logPath   string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	notice      string

	// Data state
	snapshot  state.Snapshot
	filter    rooms.Filter
	grouped   rooms.Grouped
	buildings []string
	genders   []string

	// Rooms grid
	gridViewport viewport.Model
	searchInput  textinput.Model
	searching    bool

	// Session log
	logViewport viewport.Model
	logState    logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	ti := textinput.New()
	ti.Placeholder = "Search rooms..."
	ti.CharLimit = 64
	ti.Prompt = "/"
	ti.SetValue(opts.Filter.Search)

	return Model{
		ctx:         ctx,
		session:     opts.Session,
		store:       opts.Store,
		prefsPath:   opts.PrefsPath,
		logPath:     opts.LogPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewRooms,
		filter:      opts.Filter,
		searchInput: ti,
		logState:    logState{follow: true},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
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
		if !m.ready {
			m.gridViewport = viewport.New(m.width-2, m.contentHeight()-2)
			m.logViewport = viewport.New(m.width-2, m.contentHeight()-3)
		}
		m.ready = true
		m.refreshGrid()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.refreshGrid()
		return m, nil

	case refreshDoneMsg:
		if !msg.admitted {
			m.notice = "Refresh skipped: last fetch was under a second ago"
		} else {
			m.notice = ""
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
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

	if m.currentView == ViewRooms {
		switch {
		case !m.snapshot.Loaded:
			return m.renderTerminalState(m.theme.Styles().MutedText.Render("Loading..."))
		case m.snapshot.LastError != nil:
			return m.renderErrorState()
		}
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderGrid())
	}
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshGrid()
		m.logState.rendered = false
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.LongerInterval):
		return m, m.changeInterval(+1)

	case key.Matches(msg, m.keys.ShorterInterval):
		return m, m.changeInterval(-1)

	case key.Matches(msg, m.keys.Logs):
		if m.currentView == ViewLogs {
			m.currentView = ViewRooms
			return m, nil
		}
		m.currentView = ViewLogs
		return m, m.readLogsCmd()

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewRooms
		return m, nil
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleRoomsKey(msg)
	}
}

// handleRoomsKey processes keyboard input for the rooms grid.
func (m Model) handleRoomsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.NextBuilding):
		m.filter.Building = cycleOption(m.buildings, m.filter.Building, +1)
		m.applyFilter()

	case key.Matches(msg, m.keys.PrevBuilding):
		m.filter.Building = cycleOption(m.buildings, m.filter.Building, -1)
		m.applyFilter()

	case key.Matches(msg, m.keys.CycleGender):
		m.filter.Gender = cycleOption(m.genders, m.filter.Gender, +1)
		m.applyFilter()

	case key.Matches(msg, m.keys.CycleZone):
		m.filter.Zone = nextZone(m.filter.Zone)
		m.applyFilter()

	case key.Matches(msg, m.keys.MoreBeds):
		if m.filter.MinBeds < MaxMinBeds {
			m.filter.MinBeds++
			m.applyFilter()
		}

	case key.Matches(msg, m.keys.FewerBeds):
		if m.filter.MinBeds > 0 {
			m.filter.MinBeds--
			m.applyFilter()
		}

	case key.Matches(msg, m.keys.ClearFilters):
		m.filter = rooms.Filter{}
		m.searchInput.SetValue("")
		m.applyFilter()

	case key.Matches(msg, m.keys.Down):
		m.gridViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.gridViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.gridViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.gridViewport.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		m.gridViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.gridViewport.GotoBottom()
	}
	return m, nil
}

// handleSearchInput applies the search filter on every keystroke. Enter
// keeps the query, esc clears it.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Search = ""
		m.applyFilter()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.filter.Search {
		m.filter.Search = value
		m.refreshGrid()
	}
	return m, cmd
}

// applyFilter rebuilds the grid and persists the new selection.
func (m *Model) applyFilter() {
	m.refreshGrid()
	m.gridViewport.GotoTop()
	m.savePrefs()
}

// handleTick re-reads the store and, when following, the session log.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs && m.logState.follow {
		if cmd := m.readLogsCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) changeInterval(delta int) tea.Cmd {
	if m.session == nil {
		return nil
	}
	m.session.SetInterval(m.session.Interval() + delta)
	m.savePrefs()
	if m.store != nil {
		return fetchSnapshotCmd(m.store)
	}
	return nil
}

func (m Model) refreshCmd() tea.Cmd {
	if m.session == nil {
		return nil
	}
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		return refreshDoneMsg{admitted: session.Refresh(ctx)}
	}
}

// savePrefs persists theme, filters and interval. Failures are ignored; the
// dashboard works without saved preferences.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{
		Theme: m.theme.Name,
		Filters: prefs.Filters{
			Search:   m.filter.Search,
			Building: m.filter.Building,
			Gender:   m.filter.Gender,
			Zone:     string(m.filter.Zone),
			MinBeds:  m.filter.MinBeds,
		},
	}
	if m.session != nil {
		p.IntervalMinutes = m.session.Interval()
	}
	_ = prefs.Save(m.prefsPath, p)
}

func (m Model) contentHeight() int {
	return max(m.height-3, 3) // header, filter bar, command bar
}

// renderTerminalState centres a message on an otherwise empty screen.
func (m Model) renderTerminalState(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderErrorState() string {
	styles := m.theme.Styles()
	msg := styles.DangerText.Render("Error: " + m.snapshot.LastError.Error())
	hint := styles.MutedText.Render(retryHint(m.snapshot.IntervalMinutes))
	return m.renderTerminalState(lipgloss.JoinVertical(lipgloss.Center, msg, "", hint))
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct {
	admitted bool
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
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
