package ui

import (
	"fmt"
	"strings"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/nav"
)

// renderDayStrip renders one chip per day with the selected day highlighted
// in its own accent color.
func (m Model) renderDayStrip(selected int) string {
	styles := m.theme.Styles()
	chips := make([]string, 0, len(m.trip.Days))
	for _, d := range m.trip.Days {
		label := fmt.Sprintf("Day %d", d.Number)
		if m.width < LayoutCompactWidth {
			label = fmt.Sprintf("%d", d.Number)
		}
		chips = append(chips, styles.Chip(d.Color, d.Number == selected).Render(label))
	}
	return strings.Join(chips, " ")
}

// renderDayDetail renders the strip, the day heading and its stops.
func (m Model) renderDayDetail(day catalog.Day) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderDayStrip(day.Number))
	b.WriteString("\n\n")

	heading := styles.Chip(day.Color, true).Render(fmt.Sprintf("Day %d", day.Number))
	b.WriteString(heading + " " + styles.Text.Bold(true).Render(day.Theme))
	if day.Date != "" {
		b.WriteString("  " + styles.MutedText.Render(day.Date))
	}
	b.WriteString("\n\n")

	for _, stop := range day.Stops {
		m.writeStop(&b, stop)
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("h/l previous/next day · esc all days"))
	return b.String()
}

func (m Model) writeStop(b *strings.Builder, stop catalog.Stop) {
	styles := m.theme.Styles()
	indent := strings.Repeat(" ", 8)

	b.WriteString(styles.AccentText.Render(padRight(stop.Time, 6)))
	b.WriteString("  ")
	if stop.Category != "" {
		b.WriteString(stop.Category + " ")
	}
	b.WriteString(styles.Text.Bold(true).Render(stop.Name))
	if stop.DurationLabel != "" {
		b.WriteString("  " + styles.InfoText.Render(stop.DurationLabel))
	}
	b.WriteString("\n")

	if stop.Note != "" {
		note := stop.Note
		if m.width < LayoutWideWidth {
			note = truncate(note, m.width-len(indent)-2)
		}
		b.WriteString(indent + styles.MutedText.Render(note) + "\n")
	}
	for _, link := range []struct{ label, url string }{
		{"map", stop.MapURL},
		{"parking", stop.ParkingURL},
		{"lockers", stop.StorageURL},
		{"info", stop.SpecialURL},
	} {
		if link.url == "" {
			continue
		}
		b.WriteString(indent + styles.FaintText.Render(padRight(link.label, 8)+shortURL(link.url)) + "\n")
	}
	if stop.Transport != nil {
		leg := strings.TrimSpace(stop.Transport.Mode + " " + stop.Transport.Time)
		b.WriteString(indent + styles.FaintText.Render("↓ ") + styles.MutedText.Render(leg) + "\n")
	}
}

// renderDayList renders every day as a selectable row. A stored day the trip
// does not contain is called out above the list.
func (m Model) renderDayList() (string, int) {
	styles := m.theme.Styles()
	var b strings.Builder
	line := 0

	if n := m.snapshot.Nav.SelectedDay; n != nav.NoDay && !m.trip.HasDay(n) {
		b.WriteString(styles.WarningText.Render(fmt.Sprintf("Day %d is not part of this trip.", n)))
		b.WriteString("\n\n")
		line += 2
	}
	b.WriteString(styles.Text.Bold(true).Render("All days"))
	b.WriteString("\n\n")
	line += 2

	cursorLine := -1
	for i, d := range m.trip.Days {
		row := fmt.Sprintf("%s  %-18s %s", styles.Chip(d.Color, true).Render(fmt.Sprintf("Day %d", d.Number)), d.Date, d.Theme)
		if i == m.listCursor {
			row = styles.Selected.Render("> ") + row
			cursorLine = line
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
		line++
	}
	return b.String(), cursorLine
}
