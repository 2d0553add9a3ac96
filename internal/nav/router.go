package nav

// State is the navigation snapshot the presentation layer renders from.
type State struct {
	ActiveTab     Tab
	ActiveSubView SubView
	SelectedDay   int
}

// Screen is what the presentation layer should draw for a State.
type Screen int

const (
	ScreenDayList Screen = iota
	ScreenDayDetail
	ScreenMenuRoot
	ScreenSubView
)

func (s Screen) String() string {
	switch s {
	case ScreenDayList:
		return "day-list"
	case ScreenDayDetail:
		return "day-detail"
	case ScreenMenuRoot:
		return "menu-root"
	case ScreenSubView:
		return "sub-view"
	default:
		return "unknown"
	}
}

// Router is the tab and sub-view state machine. There is one level of
// nesting and no history: closing a sub-view always lands on the menu root.
type Router struct {
	tab     Tab
	subView SubView
	days    DaySelector
}

// NewRouter starts on the itinerary tab with no sub-view open.
func NewRouter(policy DayPolicy, firstDay int) *Router {
	return &Router{
		tab:  TabItinerary,
		days: NewDaySelector(policy, firstDay),
	}
}

// State returns the current navigation state.
func (r *Router) State() State {
	return State{
		ActiveTab:     r.tab,
		ActiveSubView: r.subView,
		SelectedDay:   r.days.Day(),
	}
}

// DayPolicy returns the day selection policy.
func (r *Router) DayPolicy() DayPolicy {
	return r.days.Policy()
}

// SelectTab activates tab. Leaving the menu discards any open sub-view, so
// coming back always starts at the menu root. Re-selecting the menu tab keeps
// the open sub-view. Every call counts as a tab change for the day selector,
// including re-selecting the active tab, so DayPolicyReset clears the day.
func (r *Router) SelectTab(tab Tab) {
	if tab != TabItinerary && tab != TabMenu {
		return
	}
	if r.tab == TabMenu && tab != TabMenu {
		r.subView = SubViewNone
	}
	r.tab = tab
	r.days.tabChanged()
}

// OpenSubView opens v. It only applies on the menu tab and for a real page.
func (r *Router) OpenSubView(v SubView) bool {
	if r.tab != TabMenu || !v.Valid() {
		return false
	}
	r.subView = v
	return true
}

// CloseSubView returns to the menu root.
func (r *Router) CloseSubView() {
	r.subView = SubViewNone
}

// SelectDay records the itinerary day. See DaySelector.Select.
func (r *Router) SelectDay(n int) {
	r.days.Select(n)
}

// Resolve maps the state onto a drawable screen. A day or page the content
// does not have falls back to the day list or menu root.
func (s State) Resolve(content Content) Screen {
	if s.ActiveTab == TabMenu {
		if s.ActiveSubView.Valid() && content != nil && content.HasPage(s.ActiveSubView.String()) {
			return ScreenSubView
		}
		return ScreenMenuRoot
	}
	if _, ok := ResolveDay(content, s.SelectedDay); ok {
		return ScreenDayDetail
	}
	return ScreenDayList
}
