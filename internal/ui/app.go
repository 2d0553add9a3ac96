package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/logging"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/prefs"
	"github.com/five82/wayfarer/internal/state"
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	Trip      *catalog.Trip
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving preferences
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	trip      *catalog.Trip
	prefs     prefs.Prefs
	prefsPath string
	log       *zap.Logger

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Data state
	snapshot state.Snapshot

	// Body
	body       viewport.Model
	bodyKey    string // identifies the page in the viewport; a change scrolls to top
	listCursor int    // day list
	browsing   bool   // day list shown over a persistent selection
	menuCursor int    // menu root, index into nav.SubViews
	packCursor int    // packing page, flat index over all items
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Default()
	}
	m := Model{
		store:     opts.Store,
		trip:      opts.Trip,
		prefs:     p,
		prefsPath: opts.PrefsPath,
		log:       logging.Named("ui"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(p.Theme),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return fetchSnapshotCmd(m.store)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.body = viewport.New(msg.Width, bodyHeight(msg.Height))
			m.ready = true
		} else {
			m.body.Width = msg.Width
			m.body.Height = bodyHeight(msg.Height)
		}
		m.help.Width = msg.Width
		m.refreshBody()
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampCursors()
		m.refreshBody()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderHeader() + "\n" + m.body.View() + "\n" + m.renderFooter()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.Itinerary):
		return m, m.selectTab(nav.TabItinerary)

	case key.Matches(msg, m.keys.Menu):
		return m, m.selectTab(nav.TabMenu)

	case key.Matches(msg, m.keys.NextTab):
		next := nav.TabMenu
		if m.snapshot.Nav.ActiveTab == nav.TabMenu {
			next = nav.TabItinerary
		}
		return m, m.selectTab(next)

	case key.Matches(msg, m.keys.PageUp):
		m.body.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.body.HalfPageDown()
		return m, nil
	}

	switch m.screen() {
	case nav.ScreenDayDetail:
		return m.handleDayDetailKey(msg)
	case nav.ScreenDayList:
		return m.handleDayListKey(msg)
	case nav.ScreenMenuRoot:
		return m.handleMenuKey(msg)
	case nav.ScreenSubView:
		return m.handleSubViewKey(msg)
	}
	return m, nil
}

func (m Model) handleDayDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.snapshot.Nav.SelectedDay
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		return m, m.selectDay(nav.Step(m.trip, day, -1))
	case key.Matches(msg, m.keys.NextDay):
		return m, m.selectDay(nav.Step(m.trip, day, 1))
	case key.Matches(msg, m.keys.Back):
		m.listCursor = m.dayIndex(day)
		if m.store != nil && m.store.DayPolicy() == nav.DayPolicyReset {
			return m, m.selectDay(nav.NoDay)
		}
		m.browsing = true
		m.refreshBody()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.body.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.body.ScrollDown(1)
	}
	return m, nil
}

func (m Model) handleDayListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.trip == nil || len(m.trip.Days) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(m.trip.Days)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.NextDay):
		return m, m.selectDay(m.trip.Days[m.listCursor].Number)
	default:
		return m, nil
	}
	m.refreshBody()
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(nav.SubViews)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Open):
		v := nav.SubViews[m.menuCursor]
		if !m.hasPage(v) {
			m.notice = pageTitle(m.trip, v) + " is not available for this trip"
			return m, nil
		}
		return m, m.mutate(func(s *state.Store) { s.OpenSubView(v) })
	default:
		return m, nil
	}
	m.refreshBody()
	return m, nil
}

func (m Model) handleSubViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		return m, m.mutate(func(s *state.Store) { s.CloseSubView() })
	}
	if m.snapshot.Nav.ActiveSubView == nav.SubViewPacking {
		return m.handlePackingKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.body.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.body.ScrollDown(1)
	}
	return m, nil
}

func (m Model) handlePackingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.snapshot.Progress.Total
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.packCursor > 0 {
			m.packCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.packCursor < total-1 {
			m.packCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		ci, ii, ok := itemAt(m.snapshot, m.packCursor)
		if !ok {
			return m, nil
		}
		return m, m.mutate(func(s *state.Store) {
			if err := s.Toggle(ci, ii); err != nil {
				m.log.Warn("toggle rejected", zap.Int("category", ci), zap.Int("item", ii), zap.Error(err))
			}
		})
	case key.Matches(msg, m.keys.BankDetails):
		m.prefs.PowerBankDetails = !m.prefs.PowerBankDetails
		m.savePrefs()
	default:
		return m, nil
	}
	m.refreshBody()
	return m, nil
}

func (m *Model) selectTab(tab nav.Tab) tea.Cmd {
	m.browsing = false
	if tab == nav.TabMenu && m.snapshot.Nav.ActiveTab != nav.TabMenu {
		m.menuCursor = 0
	}
	return m.mutate(func(s *state.Store) { s.SelectTab(tab) })
}

func (m *Model) selectDay(n int) tea.Cmd {
	m.browsing = false
	return m.mutate(func(s *state.Store) { s.SelectDay(n) })
}

// mutate applies fn to the store and schedules a fresh snapshot.
func (m *Model) mutate(fn func(*state.Store)) tea.Cmd {
	if m.store == nil {
		return nil
	}
	fn(m.store)
	return fetchSnapshotCmd(m.store)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("preferences not saved", zap.String("path", m.prefsPath), zap.Error(err))
		m.notice = "Preferences not saved"
	}
}

func (m *Model) clampCursors() {
	if m.trip != nil && m.listCursor >= len(m.trip.Days) {
		m.listCursor = len(m.trip.Days) - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}
	if total := m.snapshot.Progress.Total; m.packCursor >= total {
		m.packCursor = total - 1
	}
	if m.packCursor < 0 {
		m.packCursor = 0
	}
}

func (m Model) dayIndex(n int) int {
	if m.trip == nil {
		return 0
	}
	for i, d := range m.trip.Days {
		if d.Number == n {
			return i
		}
	}
	return 0
}

// screen is the store's screen, except that a persistent day can be covered
// by the day list without clearing the selection.
func (m Model) screen() nav.Screen {
	if m.browsing && m.snapshot.Screen == nav.ScreenDayDetail {
		return nav.ScreenDayList
	}
	return m.snapshot.Screen
}

func (m Model) hasPage(v nav.SubView) bool {
	return m.trip != nil && m.trip.HasPage(v.String())
}

// Messages

type snapshotMsg state.Snapshot

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
