package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Days bring their own accent colors from the
// catalogue, so a theme only colors chrome, text and packing state.
type Theme struct {
	Name string

	Background string
	Surface    string // header and footer
	SurfaceAlt string // inactive tabs and day chips
	Selection  string // cursor row background

	Text    string
	Muted   string
	Faint   string
	Accent  string // active tab, links, headings
	Success string // packed items, completed categories
	Warning string // notes and the title
	Info    string // durations and transport legs
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	InfoText    lipgloss.Style
	Title       lipgloss.Style

	Header      lipgloss.Style
	Footer      lipgloss.Style
	Selected    lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	chipOff lipgloss.Style
	chipFg  lipgloss.Color
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Styles builds the lipgloss styles for t.
func (t Theme) Styles() Styles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)
	tab := lipgloss.NewStyle().Padding(0, 2)
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		InfoText:    fg(t.Info),
		Title:       fg(t.Warning).Bold(true),

		Header:      bar.Foreground(lipgloss.Color(t.Text)),
		Footer:      bar.Foreground(lipgloss.Color(t.Muted)),
		Selected:    fg(t.Text).Background(lipgloss.Color(t.Selection)),
		TabActive:   tab.Foreground(lipgloss.Color(t.Background)).Background(lipgloss.Color(t.Accent)).Bold(true),
		TabInactive: tab.Foreground(lipgloss.Color(t.Muted)).Background(lipgloss.Color(t.SurfaceAlt)),

		chipOff: fg(t.Muted).Background(lipgloss.Color(t.SurfaceAlt)).Padding(0, 1),
		chipFg:  lipgloss.Color(t.Background),
	}
}

// Chip returns the badge style for a day. The selected day is filled with
// its catalogue color; the rest, and days without a color, stay muted.
func (s Styles) Chip(color string, active bool) lipgloss.Style {
	if !active || color == "" {
		return s.chipOff.Bold(active)
	}
	return lipgloss.NewStyle().
		Foreground(s.chipFg).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// themeOrder is the cycle the theme key walks through. Palettes come from
// nightfox.nvim, kanagawa.nvim and the Tailwind slate/sky scales.
var themeOrder = []Theme{
	{
		Name:       "Nightfox",
		Background: "#131a24", Surface: "#192330", SurfaceAlt: "#212e3f", Selection: "#2b3b51",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Accent: "#719cd6", Success: "#81b29a", Warning: "#dbc074", Info: "#63cdcf",
	},
	{
		Name:       "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28", SurfaceAlt: "#2A2A37", Selection: "#2D4F67",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Accent: "#7E9CD8", Success: "#98BB6C", Warning: "#E6C384", Info: "#7FB4CA",
	},
	{
		Name:       "Slate",
		Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b", Selection: "#0284c7",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Accent: "#38bdf8", Success: "#22c55e", Warning: "#f59e0b", Info: "#06b6d4",
	},
}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range themeOrder {
		if t.Name == name {
			return t
		}
	}
	return themeOrder[0]
}

// NextTheme returns the theme name after current in the cycle.
func NextTheme(current string) string {
	for i, t := range themeOrder {
		if t.Name == current {
			return themeOrder[(i+1)%len(themeOrder)].Name
		}
	}
	return themeOrder[0].Name
}
