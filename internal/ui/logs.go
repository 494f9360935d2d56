package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bedboard/internal/logtail"
)

// logState holds the session log view state.
type logState struct {
	lines    []string
	err      error
	follow   bool
	rendered bool
}

type logLinesMsg struct {
	lines []string
	err   error
}

// readLogsCmd tails the session log file off the UI goroutine.
func (m Model) readLogsCmd() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		raw, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.FormatLines(raw)}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	if msg.err != nil {
		m.logState.err = msg.err
		m.logState.rendered = false
		m.updateLogViewport()
		return
	}
	changed := m.logState.err != nil || !slices.Equal(m.logState.lines, msg.lines)
	m.logState.err = nil
	m.logState.lines = msg.lines
	if changed {
		m.logState.rendered = false
	}
	m.updateLogViewport()
}

// handleLogsKey processes keyboard input for the session log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
		}
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logState.follow = false
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logState.follow = false
		m.logViewport.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		m.logState.follow = false
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logState.follow = true
		m.logViewport.GotoBottom()
	}
	return m, nil
}

// updateLogViewport updates the log viewport with current content.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(m.contentHeight()-3, 1)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	// Only re-render content if it changed
	if !m.logState.rendered {
		m.logViewport.SetContent(m.renderLogContent(m.logViewport.Width))
		m.logState.rendered = true
	}

	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogs renders the log view with its status line below.
func (m Model) renderLogs() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	box := m.renderTitledBox("Session Log", m.logViewport.View(), m.width, m.contentHeight()-1, true)

	follow := ternary(m.logState.follow, "on", "off")
	parts := []string{
		bg.Render(fmt.Sprintf("%d lines", len(m.logState.lines)), styles.FaintText),
		bg.Render("follow "+follow, styles.FaintText),
	}
	if m.logPath != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.logPath, 60), styles.AccentText))
	}
	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return box + "\n" + bg.FillLine(strings.Join(parts, sep), m.width)
}

// renderLogContent renders the colorized log lines.
func (m Model) renderLogContent(width int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	if m.logPath == "" {
		return bg.FillLine(bg.Render("Session logging is disabled", styles.MutedText), width)
	}
	if m.logState.err != nil {
		return bg.FillLine(bg.Render("Log unavailable: "+m.logState.err.Error(), styles.DangerText), width)
	}
	if len(m.logState.lines) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	clip := lipgloss.NewStyle().MaxWidth(width)
	out := make([]string, len(m.logState.lines))
	for i, line := range m.logState.lines {
		out[i] = clip.Render(bg.FillLine(m.colorizeLogLine(line, styles), width))
	}
	return strings.Join(out, "\n")
}

// colorizeLogLine picks a style from the level column of a formatted line.
func (m Model) colorizeLogLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, " ERROR "), strings.Contains(line, " FATAL "):
		return styles.DangerText.Render(line)
	case strings.Contains(line, " WARN "):
		return styles.WarningText.Render(line)
	case strings.Contains(line, " DEBUG "):
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}
