package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/checklist"
)

// MinWidth is the narrowest layout the formatters produce.
const MinWidth = 40

func clampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	return width
}

// FormatOverview renders the trip title, the day table and packing progress.
func FormatOverview(trip *catalog.Trip, progress checklist.Progress, width int) string {
	var b strings.Builder
	b.WriteString(Bold(trip.Title))
	if trip.Subtitle != "" {
		b.WriteString("  " + Dim(trip.Subtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(FormatDayList(trip, width))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Packing  %s  %d/%d\n", RenderProgress(progress.Percent, 20), progress.Packed, progress.Total))
	b.WriteString(Dim("wayfarer day <n> · wayfarer pack · wayfarer --help"))
	return b.String()
}

// FormatDayList renders one row per day.
func FormatDayList(trip *catalog.Trip, width int) string {
	width = clampWidth(width)
	rows := make([][]string, 0, len(trip.Days))
	for _, d := range trip.Days {
		rows = append(rows, []string{
			strconv.Itoa(d.Number),
			d.Date,
			truncate(d.Theme, width-36),
			strconv.Itoa(len(d.Stops)),
		})
	}
	return RenderTable([]string{"DAY", "DATE", "THEME", "STOPS"}, rows)
}

// FormatDay renders every stop of a day with its links and the leg to the
// next stop.
func FormatDay(day catalog.Day, width int) string {
	width = clampWidth(width)
	indent := strings.Repeat(" ", 8)
	wrap := lipgloss.NewStyle().Width(width - len(indent))

	var b strings.Builder
	b.WriteString(DayChip(day.Number, day.Color) + " " + Bold(day.Theme))
	if day.Date != "" {
		b.WriteString("  " + Dim(day.Date))
	}
	b.WriteString("\n\n")

	for _, s := range day.Stops {
		line := StyleBlue.Render(fmt.Sprintf("%-6s", s.Time)) + "  "
		if s.Category != "" {
			line += s.Category + " "
		}
		line += Bold(s.Name)
		if s.DurationLabel != "" {
			line += "  " + StyleCyan.Render(s.DurationLabel)
		}
		b.WriteString(line + "\n")

		if s.Note != "" {
			for _, l := range strings.Split(wrap.Render(s.Note), "\n") {
				b.WriteString(indent + Dim(strings.TrimRight(l, " ")) + "\n")
			}
		}
		for _, link := range [][2]string{
			{"map", s.MapURL}, {"parking", s.ParkingURL}, {"lockers", s.StorageURL}, {"info", s.SpecialURL},
		} {
			if link[1] != "" {
				b.WriteString(indent + Dim(fmt.Sprintf("%-8s", link[0])) + link[1] + "\n")
			}
		}
		if s.Transport != nil {
			b.WriteString(indent + Dim("↓ "+strings.TrimSpace(s.Transport.Mode+" "+s.Transport.Time)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatFlights renders both flight legs.
func FormatFlights(f catalog.Flights) string {
	var b strings.Builder
	b.WriteString(Header("Flights"))
	b.WriteString("\n")
	for _, leg := range []catalog.Flight{f.Outbound, f.Inbound} {
		if leg.Number == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(leg.Kind) + "  " + Bold(leg.Airline+" "+leg.Number) + "  " + Dim(leg.Date) + "\n")
		b.WriteString(fmt.Sprintf("  %s %s  →  %s %s\n",
			StyleBlue.Render(leg.Departure.Time), endpoint(leg.Departure),
			StyleBlue.Render(leg.Arrival.Time), endpoint(leg.Arrival)))
		if leg.Baggage.Checked != "" {
			b.WriteString("  " + Dim("checked   ") + leg.Baggage.Checked + "\n")
		}
		if leg.Baggage.CarryOn != "" {
			b.WriteString("  " + Dim("carry-on  ") + leg.Baggage.CarryOn + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func endpoint(e catalog.Endpoint) string {
	return strings.TrimSpace(e.City + " " + e.Terminal)
}

// FormatStays renders the accommodation list.
func FormatStays(stays []catalog.Accommodation) string {
	var b strings.Builder
	b.WriteString(Header("Accommodation"))
	b.WriteString("\n")
	for _, a := range stays {
		b.WriteString("\n" + Bold(a.Name) + "  " + StyleBlue.Render(a.Dates) + "\n")
		if a.Address != "" {
			b.WriteString("  " + a.Address + "\n")
		}
		if a.MapURL != "" {
			b.WriteString("  " + Dim("map  ") + a.MapURL + "\n")
		}
		if a.Notes != "" {
			b.WriteString("  " + StyleCyan.Render(a.Notes) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGuide renders a guide page.
func FormatGuide(g catalog.Guide) string {
	var b strings.Builder
	b.WriteString(Header(strings.TrimSpace(g.Icon + " " + g.Title)))
	b.WriteString("\n")
	if g.Summary != "" {
		b.WriteString(Dim(g.Summary) + "\n")
	}
	for _, s := range g.Sections {
		b.WriteString("\n" + StyleBlue.Bold(true).Render(s.Heading) + "\n")
		for _, l := range s.Lines {
			b.WriteString("  • " + l + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// PackingData is everything the packing page shows.
type PackingData struct {
	List           checklist.Snapshot
	Progress       checklist.Progress
	ImportantNotes []string
	PowerBankRules []catalog.Rule
}

// FormatPacking renders the checklist with 1-based "category.item" numbers
// that `wayfarer pack toggle` accepts.
func FormatPacking(d PackingData) string {
	var b strings.Builder
	b.WriteString(Header("Packing list"))
	b.WriteString("\n")

	summary := fmt.Sprintf("%d/%d packed", d.Progress.Packed, d.Progress.Total)
	if d.Progress.Done() {
		summary = StyleGreen.Render(summary + ", ready to go")
	}
	b.WriteString(RenderProgress(d.Progress.Percent, 30) + "  " + summary + "\n")

	for ci, c := range d.List {
		cp := checklist.ComputeCategory(c)
		count := Dim(fmt.Sprintf("%d/%d", cp.Packed, cp.Total))
		if cp.Done() {
			count = StyleGreen.Render(fmt.Sprintf("%d/%d", cp.Packed, cp.Total))
		}
		b.WriteString("\n" + StyleBlue.Bold(true).Render(strings.TrimSpace(c.Icon+" "+c.Name)) + "  " + count + "\n")
		for ii, it := range c.Items {
			num := Dim(fmt.Sprintf("%5s", fmt.Sprintf("%d.%d", ci+1, ii+1)))
			if it.Packed {
				b.WriteString(fmt.Sprintf("%s  %s %s\n", num, StyleGreen.Render("[x]"), Dim(it.Name)))
			} else {
				b.WriteString(fmt.Sprintf("%s  [ ] %s\n", num, it.Name))
			}
		}
	}

	if len(d.ImportantNotes) > 0 {
		b.WriteString("\n" + StyleYellow.Bold(true).Render("Important") + "\n")
		for _, n := range d.ImportantNotes {
			b.WriteString("  ! " + StyleYellow.Render(n) + "\n")
		}
	}
	if len(d.PowerBankRules) > 0 {
		b.WriteString("\n" + StyleCyan.Bold(true).Render("Power bank rules") + "\n")
		rows := make([][]string, 0, len(d.PowerBankRules))
		for _, r := range d.PowerBankRules {
			rows = append(rows, []string{r.Rule, r.Detail})
		}
		for _, l := range strings.Split(RenderTable([]string{"CAPACITY", "RULE"}, rows), "\n") {
			b.WriteString("  " + l + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, limit int) string {
	if limit < 8 {
		limit = 8
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
