package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bedboard/internal/rooms"
)

// refreshGrid recomputes the grouped view from the current snapshot and
// filter, then re-renders the grid viewport.
func (m *Model) refreshGrid() {
	m.grouped = rooms.Build(m.snapshot.Rooms, m.filter)
	m.buildings = rooms.Buildings(m.snapshot.Rooms)
	m.genders = rooms.GenderOptions(m.snapshot.Rooms)

	if !m.ready {
		return
	}
	m.gridViewport.Width = max(m.width-2, 1)
	m.gridViewport.Height = max(m.contentHeight()-2, 1)
	m.gridViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.gridViewport.SetContent(m.renderGridContent(m.gridViewport.Width))
}

// renderGrid renders the building/room grid in a titled box.
func (m Model) renderGrid() string {
	stats := m.grouped.Stats()
	title := fmt.Sprintf("Rooms (%d)", stats.Rooms)
	if !m.filter.IsZero() {
		title = fmt.Sprintf("Rooms (%d, filtered)", stats.Rooms)
	}
	return m.renderTitledBox(title, m.gridViewport.View(), m.width, m.contentHeight(), true)
}

// gridColumns holds the column widths for room rows.
type gridColumns struct {
	room     int
	avail    int
	pct      int
	gender   int
	term     int
	capacity int
	wide     bool
}

func (m Model) gridColumns() gridColumns {
	cols := gridColumns{room: 6, avail: 22, pct: 5, gender: 8, term: 10, capacity: 9}
	cols.wide = m.width >= LayoutWideWidth
	for _, b := range m.grouped.Buildings {
		for _, r := range b.Rooms {
			cols.room = max(cols.room, len([]rune(r.BaseNumber)))
			cols.gender = max(cols.gender, len([]rune(genderLabel(r.Gender()))))
			cols.term = max(cols.term, len([]rune(r.Term())))
			cols.capacity = max(cols.capacity, len([]rune(r.Capacity())))
		}
	}
	return cols
}

// renderGridContent renders every building header followed by its rooms.
func (m Model) renderGridContent(width int) string {
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	line := lipgloss.NewStyle().MaxWidth(width)

	if m.grouped.Len() == 0 {
		msg := "No rooms available"
		if !m.filter.IsZero() {
			msg = "No rooms match the current filters (c to clear)"
		}
		return bg.FillLine(bg.Render(msg, styles.MutedText), width)
	}

	cols := m.gridColumns()

	var lines []string
	for i, b := range m.grouped.Buildings {
		if i > 0 {
			lines = append(lines, bg.FillLine("", width))
		}
		lines = append(lines, line.Render(bg.FillLine(m.renderBuildingHeader(b, styles, bg), width)))
		for _, r := range b.Rooms {
			lines = append(lines, line.Render(bg.FillLine(m.renderRoomRow(r, cols, styles, bg), width)))
		}
	}
	return strings.Join(lines, "\n")
}

// renderBuildingHeader renders "Name · Zone  N rooms".
func (m Model) renderBuildingHeader(b rooms.BuildingGroup, styles Styles, bg BgStyle) string {
	header := bg.Render(b.Name, styles.AccentText.Bold(true))
	if zone := b.Zone(); zone != rooms.ZoneNone {
		header += bg.Space() + bg.Render("·", styles.FaintText) + bg.Space() + bg.Render(string(zone), styles.InfoText)
	}
	count := fmt.Sprintf("%d %s", len(b.Rooms), ternary(len(b.Rooms) == 1, "room", "rooms"))
	return header + bg.Spaces(2) + bg.Render(count, styles.FaintText)
}

// renderRoomRow renders one room group, colored by its availability bucket.
func (m Model) renderRoomRow(r rooms.RoomGroup, cols gridColumns, styles Styles, bg BgStyle) string {
	sevStyle := styles.SeverityStyle(r.Severity()).Background(lipgloss.Color(m.theme.FocusBg))

	pct := "n/a"
	if p, ok := r.Percentage(); ok {
		pct = fmt.Sprintf("%.0f%%", p)
	}

	parts := []string{
		bg.Spaces(2) + bg.Render(padRight(r.BaseNumber, cols.room), styles.Text.Bold(true)),
		sevStyle.Render(padRight(r.AvailabilityString(), cols.avail)),
		sevStyle.Render(padLeft(pct, cols.pct)),
		bg.Render(padRight(genderLabel(r.Gender()), cols.gender), styles.MutedText),
	}
	if cols.wide {
		parts = append(parts,
			bg.Render(padRight(r.Term(), cols.term), styles.MutedText),
			bg.Render(padRight(r.Capacity(), cols.capacity), styles.FaintText),
		)
	}
	parts = append(parts, bg.Render(strings.Join(r.BedLetters(), " "), styles.WarningText))

	return strings.Join(parts, bg.Spaces(2))
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
