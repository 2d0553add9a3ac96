package ui

import (
	"strings"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/nav"
)

// pageTitle returns the menu label for v. Guide pages take their title from
// the catalogue.
func pageTitle(trip *catalog.Trip, v nav.SubView) string {
	switch v {
	case nav.SubViewFlights:
		return "Flights"
	case nav.SubViewPacking:
		return "Packing list"
	case nav.SubViewAccommodation:
		return "Accommodation"
	}
	if trip != nil {
		if g, ok := trip.Guide(v.String()); ok && g.Title != "" {
			return g.Title
		}
	}
	name := v.String()
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func pageIcon(trip *catalog.Trip, v nav.SubView) string {
	switch v {
	case nav.SubViewFlights:
		return "✈️"
	case nav.SubViewPacking:
		return "🧳"
	case nav.SubViewAccommodation:
		return "🏨"
	}
	if trip != nil {
		if g, ok := trip.Guide(v.String()); ok {
			return g.Icon
		}
	}
	return ""
}

// renderMenu lists every page; pages the trip has no data for are dimmed.
func (m Model) renderMenu() (string, int) {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Menu"))
	b.WriteString("\n\n")
	line := 2

	cursorLine := -1
	for i, v := range nav.SubViews {
		label := strings.TrimSpace(pageIcon(m.trip, v) + " " + pageTitle(m.trip, v))
		if m.hasPage(v) {
			label = styles.Text.Render(label)
		} else {
			label = styles.FaintText.Render(label + "  (not in this trip)")
		}
		if i == m.menuCursor {
			b.WriteString(styles.Selected.Render("> ") + label)
			cursorLine = line
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
		line++
	}
	return b.String(), cursorLine
}

// renderSubView renders the page for v.
func (m Model) renderSubView(v nav.SubView) (string, int) {
	switch v {
	case nav.SubViewFlights:
		return m.renderFlights(), -1
	case nav.SubViewAccommodation:
		return m.renderAccommodation(), -1
	case nav.SubViewPacking:
		return m.renderPacking()
	}
	g, _ := m.trip.Guide(v.String())
	return m.renderGuide(g), -1
}
