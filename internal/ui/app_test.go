package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bedboard/internal/housing"
	"github.com/five82/bedboard/internal/prefs"
	"github.com/five82/bedboard/internal/rooms"
	"github.com/five82/bedboard/internal/state"
)

type fakeSession struct {
	interval  int
	refreshes int
	reject    bool
}

func (f *fakeSession) Refresh(context.Context) bool {
	f.refreshes++
	return !f.reject
}

func (f *fakeSession) SetInterval(minutes int) int {
	f.interval = min(max(minutes, 1), 30)
	return f.interval
}

func (f *fakeSession) Interval() int {
	return f.interval
}

var testNow = time.Date(2026, 10, 16, 12, 3, 7, 0, time.UTC)

func testRooms() []housing.Room {
	return []housing.Room{
		{BuildingName: "Glenn", RoomNumber: "101A", Gender: "Male", Capacity: "Double", Term: "Fall", LastUpdated: "2026-10-16T12:00:00Z"},
		{BuildingName: "Glenn", RoomNumber: "101B", Gender: "Male", Capacity: "Double", Term: "Fall", LastUpdated: "2026-10-16T12:00:00Z"},
		{BuildingName: "Smith", RoomNumber: "201A", Gender: "Female", Capacity: "Quad", Term: "Fall", LastUpdated: "2026-10-16T11:00:00Z"},
		{BuildingName: "Hefner", RoomNumber: "3C", Gender: "DynamicGender", Capacity: "Triple", Term: "Fall", LastUpdated: "2026-10-16T11:30:00Z"},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyPress(k))
	}
	return m
}

// newLoadedModel returns a sized model holding a successful fetch of testRooms.
func newLoadedModel(t *testing.T) (Model, *fakeSession, string) {
	t.Helper()
	store := &state.Store{}
	store.Replace(testRooms(), testNow)
	store.SetInterval(1)

	session := &fakeSession{interval: 1}
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Session:   session,
		Store:     store,
		PrefsPath: prefsPath,
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	m, _ = update(t, m, snapshotMsg(store.Snapshot()))
	return m, session, prefsPath
}

func loadPrefs(t *testing.T, path string) prefs.Prefs {
	t.Helper()
	p, err := prefs.Load(path)
	require.NoError(t, err)
	return p
}

func TestNew_PollTick(t *testing.T) {
	store := &state.Store{}
	m := New(Options{Session: &fakeSession{}, Store: store})
	assert.Equal(t, DefaultUIInterval, m.pollTick)

	m = New(Options{Session: &fakeSession{}, Store: store, PollTick: 250 * time.Millisecond})
	assert.Equal(t, 250*time.Millisecond, m.pollTick)
}

func TestView_LoadingState(t *testing.T) {
	m := New(Options{Store: &state.Store{}})
	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, snapshotMsg(state.Snapshot{}))
	view := m.View()
	assert.Contains(t, view, "Loading...")
	assert.NotContains(t, view, "bedboard")
}

func TestView_ErrorStateThenRecovery(t *testing.T) {
	store := &state.Store{}
	store.SetInterval(5)
	store.Fail(errors.New("feed returned status 502"), testNow)

	m := New(Options{Store: store})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m, _ = update(t, m, snapshotMsg(store.Snapshot()))

	view := m.View()
	assert.Contains(t, view, "Error: feed returned status 502")
	assert.Contains(t, view, "Retrying every 5 minutes")
	assert.NotContains(t, view, "Glenn")

	store.Replace(testRooms(), testNow)
	m, _ = update(t, m, snapshotMsg(store.Snapshot()))
	view = m.View()
	assert.NotContains(t, view, "Error:")
	assert.Contains(t, view, "Glenn")
	assert.Contains(t, view, "3m 7s ago")
}

func TestBuildingCycling(t *testing.T) {
	m, _, prefsPath := newLoadedModel(t)
	require.Equal(t, 3, m.grouped.Len())

	m = press(t, m, "b")
	assert.Equal(t, "Glenn", m.filter.Building)
	assert.Equal(t, 1, m.grouped.Len())

	m = press(t, m, "b", "b")
	assert.Equal(t, "Hefner", m.filter.Building)

	m = press(t, m, "b")
	assert.Equal(t, "", m.filter.Building)
	assert.Equal(t, 3, m.grouped.Len())

	m = press(t, m, "B")
	assert.Equal(t, "Hefner", m.filter.Building)
	assert.Equal(t, "Hefner", loadPrefs(t, prefsPath).Filters.Building)
}

func TestGenderAndZoneCycling(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	m = press(t, m, "g")
	assert.Equal(t, rooms.GenderMale, m.filter.Gender)
	// Dynamic-gender rooms stay visible under Male.
	_, ok := m.grouped.Building("Hefner")
	assert.True(t, ok)
	_, ok = m.grouped.Building("Smith")
	assert.False(t, ok)

	m = press(t, m, "g", "g", "g")
	assert.Equal(t, "", m.filter.Gender)

	m = press(t, m, "z")
	assert.Equal(t, rooms.ZoneWest, m.filter.Zone)
	require.Equal(t, 1, m.grouped.Len())
	assert.Equal(t, "Hefner", m.grouped.Buildings[0].Name)

	m = press(t, m, "z")
	assert.Equal(t, rooms.ZoneEast, m.filter.Zone)
	assert.Equal(t, 2, m.grouped.Len())

	m = press(t, m, "z")
	assert.Equal(t, rooms.ZoneNone, m.filter.Zone)
}

func TestMinBedsBoundsAndClear(t *testing.T) {
	m, _, prefsPath := newLoadedModel(t)

	m = press(t, m, "-")
	assert.Zero(t, m.filter.MinBeds)

	m = press(t, m, "+", "=")
	assert.Equal(t, 2, m.filter.MinBeds)
	require.Equal(t, 1, m.grouped.Len())
	assert.Equal(t, "Glenn", m.grouped.Buildings[0].Name)
	assert.Equal(t, 2, loadPrefs(t, prefsPath).Filters.MinBeds)

	for i := 0; i < 10; i++ {
		m = press(t, m, "+")
	}
	assert.Equal(t, MaxMinBeds, m.filter.MinBeds)
	assert.Zero(t, m.grouped.Len())
	assert.Contains(t, m.View(), "No rooms match the current filters")

	m = press(t, m, "b", "c")
	assert.True(t, m.filter.IsZero())
	assert.Equal(t, 3, m.grouped.Len())
	assert.Zero(t, loadPrefs(t, prefsPath).Filters.MinBeds)
}

func TestSearchIsLiveAndSavedOnEnter(t *testing.T) {
	m, _, prefsPath := newLoadedModel(t)

	m = press(t, m, "/")
	require.True(t, m.searching)

	m = press(t, m, "smi")
	assert.Equal(t, "smi", m.filter.Search)
	assert.Equal(t, 1, m.grouped.Len())
	assert.Empty(t, loadPrefs(t, prefsPath).Filters.Search)

	// Filter keys are typed into the query while searching.
	m = press(t, m, "b")
	assert.Equal(t, "smib", m.filter.Search)
	assert.Empty(t, m.filter.Building)
	assert.Zero(t, m.grouped.Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = press(t, m, "enter")
	assert.False(t, m.searching)
	assert.Equal(t, "smi", m.filter.Search)
	assert.Equal(t, "smi", loadPrefs(t, prefsPath).Filters.Search)

	m = press(t, m, "/", "esc")
	assert.False(t, m.searching)
	assert.Empty(t, m.filter.Search)
	assert.Equal(t, 3, m.grouped.Len())
	assert.Empty(t, loadPrefs(t, prefsPath).Filters.Search)
}

func TestRefreshKey(t *testing.T) {
	m, session, _ := newLoadedModel(t)

	m, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, refreshDoneMsg{admitted: true}, msg)
	assert.Equal(t, 1, session.refreshes)

	m, cmd = update(t, m, refreshDoneMsg{admitted: false})
	assert.NotEmpty(t, m.notice)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, refreshDoneMsg{admitted: true})
	assert.Empty(t, m.notice)
}

func TestIntervalKeys(t *testing.T) {
	m, session, prefsPath := newLoadedModel(t)

	m = press(t, m, "]", "]")
	assert.Equal(t, 3, session.interval)
	assert.Equal(t, 3, loadPrefs(t, prefsPath).IntervalMinutes)

	press(t, m, "[", "[", "[", "[")
	assert.Equal(t, 1, session.interval)
}

func TestThemeCycleIsSaved(t *testing.T) {
	m, _, prefsPath := newLoadedModel(t)
	require.Equal(t, "Nightfox", m.theme.Name)

	m = press(t, m, "T")
	assert.Equal(t, "Kanagawa", m.theme.Name)
	assert.Equal(t, "Kanagawa", loadPrefs(t, prefsPath).Theme)
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	m = press(t, m, "?")
	require.True(t, m.showHelp)
	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Next building")

	// Any key closes help without acting on it.
	m = press(t, m, "b")
	assert.False(t, m.showHelp)
	assert.Empty(t, m.filter.Building)
}

func TestQuit(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	_, cmd := update(t, m, keyPress("Q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionLogView(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bedboard.log")
	line := `{"level":"info","timestamp":"2026-10-16T12:00:00.000Z","logger":"session","msg":"fetch complete","rooms":4}`
	require.NoError(t, os.WriteFile(logPath, []byte(line+"\n"), 0o644))

	m, _, _ := newLoadedModel(t)
	m.logPath = logPath

	m, cmd := update(t, m, keyPress("L"))
	assert.Equal(t, ViewLogs, m.currentView)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	require.Len(t, m.logState.lines, 1)
	assert.Contains(t, m.logState.lines[0], "fetch complete")
	assert.Contains(t, m.logState.lines[0], "rooms=4")

	view := m.View()
	assert.Contains(t, view, "Session Log")
	assert.Contains(t, view, "fetch complete")

	m = press(t, m, " ")
	assert.False(t, m.logState.follow)

	m = press(t, m, "esc")
	assert.Equal(t, ViewRooms, m.currentView)
}

func TestCycleOption(t *testing.T) {
	opts := []string{"Glenn", "Smith"}

	assert.Equal(t, "Glenn", cycleOption(opts, "", +1))
	assert.Equal(t, "Smith", cycleOption(opts, "Glenn", +1))
	assert.Equal(t, "", cycleOption(opts, "Smith", +1))
	assert.Equal(t, "Smith", cycleOption(opts, "", -1))
	assert.Equal(t, "Glenn", cycleOption(opts, "Gone", +1))
	assert.Equal(t, "", cycleOption(nil, "", +1))
}

func TestNextZone(t *testing.T) {
	assert.Equal(t, rooms.ZoneWest, nextZone(rooms.ZoneNone))
	assert.Equal(t, rooms.ZoneEast, nextZone(rooms.ZoneWest))
	assert.Equal(t, rooms.ZoneNone, nextZone(rooms.ZoneEast))
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	require.Equal(t, []string{"Nightfox", "Kanagawa", "Slate"}, names)
	for i, name := range names {
		assert.Equal(t, names[(i+1)%len(names)], NextTheme(name))
		th := GetTheme(name)
		assert.Equal(t, name, th.Name)
		for _, sev := range rooms.Severities {
			assert.NotEmpty(t, th.SeverityColors[sev], "%s missing %s", name, sev)
		}
	}
	assert.Equal(t, "Nightfox", GetTheme("missing").Name)
	assert.Equal(t, "Nightfox", NextTheme("missing"))
}
