package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bedboard/internal/rooms"
)

// renderHeader renders the status bar: counts, freshness and poll state.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	stats := m.grouped.Stats()

	var parts []string

	// Logo
	parts = append(parts, bg.Render("bedboard", styles.Logo))

	// Counts
	if compact {
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d/%d/%d", stats.Buildings, stats.Rooms, stats.Beds), styles.Text))
	} else {
		parts = append(parts,
			bg.Render("Buildings:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", stats.Buildings), styles.Text),
			bg.Render("Rooms:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", stats.Rooms), styles.Text),
			bg.Render("Beds:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", stats.Beds), styles.SuccessText),
		)
	}

	// Freshness
	parts = append(parts, m.formatFreshness(styles, bg))

	// Poll interval
	parts = append(parts,
		bg.Render("Every", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%dm", m.snapshot.IntervalMinutes), styles.InfoText))

	// Offline indicator
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	}

	return bg.Join(parts, "  ")
}

// formatFreshness renders the newest record time and the age of the data.
func (m Model) formatFreshness(styles Styles, bg BgStyle) string {
	if !m.snapshot.HasAnchor() {
		return bg.Render("Updated:", styles.MutedText) + bg.Space() + bg.Render("unknown", styles.FaintText)
	}
	return bg.Render("Updated:", styles.MutedText) + bg.Space() +
		bg.Render(m.snapshot.LastUpdated.Local().Format("15:04:05"), styles.Text) + bg.Space() +
		bg.Render("("+m.snapshot.Elapsed+" ago)", styles.WarningText)
}

// renderFilterBar renders the active filter selections.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	var segments []string

	switch {
	case m.searching:
		segments = append(segments, m.searchInput.View())
	case m.filter.Search != "":
		segments = append(segments,
			bg.Render("/"+truncate(m.filter.Search, SearchDisplayLimit), styles.AccentText))
	default:
		segments = append(segments, bg.Render("/search", styles.FaintText))
	}

	field := func(label, value string) string {
		style := styles.Text
		if value == "" {
			value = "All"
			style = styles.FaintText
		}
		return bg.Render(label, styles.MutedText) + colon + bg.Space() + bg.Render(value, style)
	}

	segments = append(segments,
		field("Building", m.filter.Building),
		field("Gender", genderLabel(m.filter.Gender)),
		field("Zone", string(m.filter.Zone)),
	)

	minStyle := styles.FaintText
	if m.filter.MinBeds > 0 {
		minStyle = styles.Text
	}
	segments = append(segments,
		bg.Render("Min beds", styles.MutedText)+colon+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.filter.MinBeds), minStyle))

	if m.notice != "" {
		segments = append(segments,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.notice, styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Padding(0, 1).
		Width(m.width).
		Render(strings.Join(segments, sep))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		followLabel := "Pause"
		if !m.logState.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"L", "Rooms"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"b/B", "Building"},
			{"g", "Gender"},
			{"z", "Zone"},
			{"+/-", "Beds"},
			{"c", "Clear"},
			{"r", "Refresh"},
			{"[/]", "Interval"},
			{"L", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// genderLabel shortens the dynamic gender value for display.
func genderLabel(gender string) string {
	if gender == rooms.GenderDynamic {
		return "Dynamic"
	}
	return gender
}

// retryHint tells the user when the next attempt happens.
func retryHint(intervalMinutes int) string {
	unit := ternary(intervalMinutes == 1, "minute", "minutes")
	return fmt.Sprintf("Retrying every %d %s. Press r to retry now, Q to quit.", intervalMinutes, unit)
}
