package ui

import (
	"fmt"

	"github.com/five82/wayfarer/internal/nav"
)

// refreshBody re-renders the scrolling area from the current snapshot. A
// change of page scrolls back to the top; on pages with a cursor the
// viewport follows the cursor.
func (m *Model) refreshBody() {
	if !m.ready {
		return
	}
	content, cursorLine := m.renderBody()
	m.body.SetContent(content)

	key := m.pageKey()
	if key != m.bodyKey {
		m.bodyKey = key
		m.body.GotoTop()
	}
	if cursorLine < 0 {
		return
	}
	switch {
	case cursorLine < m.body.YOffset:
		m.body.SetYOffset(cursorLine)
	case cursorLine >= m.body.YOffset+m.body.Height:
		m.body.SetYOffset(cursorLine - m.body.Height + 1)
	}
}

func (m Model) pageKey() string {
	n := m.snapshot.Nav
	switch m.screen() {
	case nav.ScreenDayDetail:
		return fmt.Sprintf("day/%d", n.SelectedDay)
	case nav.ScreenSubView:
		return "page/" + n.ActiveSubView.String()
	default:
		return m.screen().String()
	}
}

// renderBody returns the page for the current screen and the line the
// cursor is on, or -1 when the page has no cursor.
func (m Model) renderBody() (string, int) {
	styles := m.theme.Styles()
	if m.trip == nil {
		return styles.MutedText.Render("No trip loaded."), -1
	}
	switch m.screen() {
	case nav.ScreenDayDetail:
		day, _ := m.trip.Day(m.snapshot.Nav.SelectedDay)
		return m.renderDayDetail(day), -1
	case nav.ScreenDayList:
		return m.renderDayList()
	case nav.ScreenMenuRoot:
		return m.renderMenu()
	case nav.ScreenSubView:
		return m.renderSubView(m.snapshot.Nav.ActiveSubView)
	}
	return "", -1
}
