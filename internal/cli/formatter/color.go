package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Nightfox palette, shared with the TUI's default theme.
var (
	ColorGreen  = lipgloss.Color("#81b29a")
	ColorYellow = lipgloss.Color("#dbc074")
	ColorRed    = lipgloss.Color("#c94f6d")
	ColorBlue   = lipgloss.Color("#719cd6")
	ColorCyan   = lipgloss.Color("#63cdcf")
	ColorDim    = lipgloss.Color("#738091")
	ColorFg     = lipgloss.Color("#cdcecf")
	ColorHeader = lipgloss.Color("#f4a261")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// DayChip renders "Day N" on the day's own accent color.
func DayChip(n int, color string) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if color != "" {
		style = style.Background(lipgloss.Color(color)).Foreground(lipgloss.Color("#131a24"))
	} else {
		style = style.Foreground(ColorBlue)
	}
	return style.Render(fmt.Sprintf("Day %d", n))
}
