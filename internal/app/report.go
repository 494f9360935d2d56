package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/bedboard/internal/rooms"
	"github.com/five82/bedboard/internal/state"
)

var reportHeaders = []string{"Building", "Zone", "Room", "Availability", "Percent", "Severity", "Gender", "Term", "Beds"}

// renderReport formats the grouped view as a table followed by a summary
// line.
func renderReport(grouped rooms.Grouped, snap state.Snapshot, filter rooms.Filter) string {
	var b strings.Builder

	if grouped.Len() == 0 {
		if filter.IsZero() {
			b.WriteString("No rooms available.\n")
		} else {
			b.WriteString("No rooms match the current filters.\n")
		}
	} else {
		b.WriteString(reportTable(grouped).Render())
		b.WriteString("\n")
	}

	b.WriteString(summaryLine(grouped.Stats(), snap))
	b.WriteString("\n")
	return b.String()
}

func reportTable(grouped rooms.Grouped) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(reportHeaders...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, building := range grouped.Buildings {
		zone := string(building.Zone())
		if zone == "" {
			zone = "-"
		}
		for _, room := range building.Rooms {
			t.Row(reportRow(building.Name, zone, room)...)
		}
	}
	return t
}

func reportRow(building, zone string, room rooms.RoomGroup) []string {
	pct := "n/a"
	if p, ok := room.Percentage(); ok {
		pct = fmt.Sprintf("%.0f%%", p)
	}
	return []string{
		building,
		zone,
		room.BaseNumber,
		room.AvailabilityString(),
		pct,
		room.Severity().String(),
		room.Gender(),
		room.Term(),
		strings.Join(room.BedLetters(), " "),
	}
}

func summaryLine(stats rooms.Stats, snap state.Snapshot) string {
	line := fmt.Sprintf("%d %s, %d %s, %d %s available",
		stats.Buildings, plural(stats.Buildings, "building", "buildings"),
		stats.Rooms, plural(stats.Rooms, "room", "rooms"),
		stats.Beds, plural(stats.Beds, "bed", "beds"),
	)
	if !snap.HasAnchor() {
		return line + "; updated unknown"
	}
	return fmt.Sprintf("%s; updated %s (%s ago)",
		line, snap.LastUpdated.Local().Format("2006-01-02 15:04:05"), snap.Elapsed)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
