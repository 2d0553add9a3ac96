package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wayfarer/internal/nav"
)

// renderHeader renders the title line and the tab strip.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	inner := m.width - 2

	title := "wayfarer"
	subtitle := ""
	if m.trip != nil {
		if m.trip.Title != "" {
			title = m.trip.Title
		}
		subtitle = m.trip.Subtitle
	}
	left := bg.Render(title, styles.Title)
	if subtitle != "" && m.width >= LayoutCompactWidth {
		left += bg.Spaces(2) + bg.Render(subtitle, styles.MutedText)
	}

	p := m.snapshot.Progress
	packedStyle := styles.MutedText
	if p.Done() {
		packedStyle = styles.SuccessText
	}
	right := bg.Render(fmt.Sprintf("Packed %d/%d", p.Packed, p.Total), packedStyle)

	line1 := styles.Header.Width(m.width).Render(bg.Spread(left, right, inner))
	line2 := styles.Header.Width(m.width).Render(
		bg.Spread(m.renderTabs(styles, bg), bg.Render(m.theme.Name, styles.FaintText), inner),
	)
	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

func (m Model) renderTabs(styles Styles, bg BgStyle) string {
	tabs := make([]string, 0, len(nav.Tabs))
	for i, tab := range nav.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == m.snapshot.Nav.ActiveTab {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	return bg.Join(tabs, " ")
}

// renderFooter shows the latest notice, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.notice != "" {
		return styles.Footer.Width(m.width).Render(styles.WarningText.Render(m.notice))
	}
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
