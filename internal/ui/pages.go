package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/state"
)

func (m Model) pageHeading(title string) string {
	styles := m.theme.Styles()
	return styles.Text.Bold(true).Render(title) + "  " + styles.FaintText.Render("esc back") + "\n\n"
}

func (m Model) renderFlights() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.pageHeading("✈️ Flights"))

	for _, f := range []catalog.Flight{m.trip.Flights.Outbound, m.trip.Flights.Inbound} {
		if f.Number == "" {
			continue
		}
		b.WriteString(styles.Chip(f.Color, true).Render(f.Kind))
		b.WriteString("  " + styles.Text.Bold(true).Render(f.Airline+" "+f.Number))
		b.WriteString("  " + styles.MutedText.Render(f.Date) + "\n")
		b.WriteString(fmt.Sprintf("  %s %s  →  %s %s\n",
			styles.AccentText.Render(f.Departure.Time), endpoint(f.Departure),
			styles.AccentText.Render(f.Arrival.Time), endpoint(f.Arrival)))
		if f.Baggage.Checked != "" {
			b.WriteString("  " + styles.FaintText.Render("checked  ") + f.Baggage.Checked + "\n")
		}
		if f.Baggage.CarryOn != "" {
			b.WriteString("  " + styles.FaintText.Render("carry-on ") + f.Baggage.CarryOn + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func endpoint(e catalog.Endpoint) string {
	if e.Terminal == "" {
		return e.City
	}
	return e.City + " " + e.Terminal
}

func (m Model) renderAccommodation() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.pageHeading("🏨 Accommodation"))

	for _, a := range m.trip.Accommodations {
		b.WriteString(styles.Text.Bold(true).Render(a.Name))
		b.WriteString("  " + styles.AccentText.Render(a.Dates) + "\n")
		if a.Address != "" {
			b.WriteString("  " + styles.MutedText.Render(a.Address) + "\n")
		}
		if a.MapURL != "" {
			b.WriteString("  " + styles.FaintText.Render("map     "+shortURL(a.MapURL)) + "\n")
		}
		if a.Notes != "" {
			b.WriteString("  " + styles.InfoText.Render(a.Notes) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGuide(g catalog.Guide) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.pageHeading(strings.TrimSpace(g.Icon + " " + g.Title)))

	if g.Summary != "" {
		b.WriteString(styles.MutedText.Render(g.Summary) + "\n\n")
	}
	for _, s := range g.Sections {
		b.WriteString(styles.AccentText.Bold(true).Render(s.Heading) + "\n")
		for _, l := range s.Lines {
			b.WriteString("  • " + styles.Text.Render(l) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderPacking renders overall progress, the travel notes and every
// category with its items. The returned line is the item under the cursor.
func (m Model) renderPacking() (string, int) {
	styles := m.theme.Styles()
	var b strings.Builder
	line := 0
	write := func(s string) {
		b.WriteString(s)
		line += strings.Count(s, "\n")
	}

	write(m.pageHeading("🧳 Packing list"))

	p := m.snapshot.Progress
	width := progressBarWidth
	if m.width > 0 && m.width-20 < width {
		width = max(m.width-20, 10)
	}
	bar := progress.New(
		progress.WithSolidFill(ternary(p.Done(), m.theme.Success, m.theme.Accent)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	summary := fmt.Sprintf("%d/%d packed (%d%%)", p.Packed, p.Total, p.Percent)
	if p.Done() {
		summary = styles.SuccessText.Render(summary + "  ready to go")
	} else {
		summary = styles.MutedText.Render(summary)
	}
	write(bar.ViewAs(p.Ratio()) + "  " + summary + "\n\n")

	if len(m.trip.ImportantNotes) > 0 {
		write(styles.WarningText.Bold(true).Render("Important") + "\n")
		for _, n := range m.trip.ImportantNotes {
			write("  ! " + styles.WarningText.Render(n) + "\n")
		}
		write("\n")
	}

	if len(m.trip.PowerBankRules) > 0 {
		if m.prefs.PowerBankDetails {
			write(styles.InfoText.Bold(true).Render("Power bank rules") + "  " + styles.FaintText.Render("d hide") + "\n")
			for _, r := range m.trip.PowerBankRules {
				write("  " + styles.Text.Render(padRight(r.Rule, 14)) + styles.MutedText.Render(r.Detail) + "\n")
			}
		} else {
			write(styles.InfoText.Render("Power bank rules") + "  " + styles.FaintText.Render("d show") + "\n")
		}
		write("\n")
	}

	cursorLine := -1
	flat := 0
	for _, c := range m.snapshot.Checklist {
		cp := checklist.ComputeCategory(c)
		countStyle := styles.FaintText
		if cp.Done() {
			countStyle = styles.SuccessText
		}
		write(styles.AccentText.Bold(true).Render(strings.TrimSpace(c.Icon+" "+c.Name)) +
			"  " + countStyle.Render(fmt.Sprintf("%d/%d", cp.Packed, cp.Total)) + "\n")
		for _, it := range c.Items {
			box, name := "[ ]", styles.Text.Render(it.Name)
			if it.Packed {
				box, name = "[x]", styles.FaintText.Strikethrough(true).Render(it.Name)
			}
			if flat == m.packCursor {
				cursorLine = line
				write(styles.Selected.Render("> "+box) + " " + name + "\n")
			} else {
				write("  " + box + " " + name + "\n")
			}
			flat++
		}
		write("\n")
	}
	return b.String(), cursorLine
}

// itemAt maps a flat cursor position onto category and item indices.
func itemAt(snap state.Snapshot, flat int) (int, int, bool) {
	if flat < 0 {
		return 0, 0, false
	}
	for ci, c := range snap.Checklist {
		if flat < len(c.Items) {
			return ci, flat, true
		}
		flat -= len(c.Items)
	}
	return 0, 0, false
}
