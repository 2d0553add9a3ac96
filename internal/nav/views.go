package nav

import "strings"

// Tab is a top-level screen.
type Tab int

const (
	TabItinerary Tab = iota
	TabMenu
)

// Tabs lists the tabs in strip order.
var Tabs = []Tab{TabItinerary, TabMenu}

func (t Tab) String() string {
	switch t {
	case TabItinerary:
		return "itinerary"
	case TabMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Label is the human-facing tab title.
func (t Tab) Label() string {
	switch t {
	case TabMenu:
		return "Menu"
	default:
		return "Itinerary"
	}
}

// SubView is an informational page reachable from the menu.
type SubView int

const (
	SubViewNone SubView = iota
	SubViewFlights
	SubViewPacking
	SubViewAccommodation
	SubViewWorship
	SubViewSurvival
	SubViewDriving
	SubViewStretch
	SubViewWeather
)

// SubViews lists the pages in menu order.
var SubViews = []SubView{
	SubViewFlights,
	SubViewPacking,
	SubViewAccommodation,
	SubViewWorship,
	SubViewSurvival,
	SubViewDriving,
	SubViewStretch,
	SubViewWeather,
}

var subViewNames = map[SubView]string{
	SubViewNone:          "",
	SubViewFlights:       "flights",
	SubViewPacking:       "packing",
	SubViewAccommodation: "accommodation",
	SubViewWorship:       "worship",
	SubViewSurvival:      "survival",
	SubViewDriving:       "driving",
	SubViewStretch:       "stretch",
	SubViewWeather:       "weather",
}

func (v SubView) String() string {
	if name, ok := subViewNames[v]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether v names a real page.
func (v SubView) Valid() bool {
	return v > SubViewNone && v <= SubViewWeather
}

// ParseSubView maps a page name ("flights", "Packing", ...) to its SubView.
func ParseSubView(name string) (SubView, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SubViewNone, false
	}
	for v, n := range subViewNames {
		if n == name {
			return v, true
		}
	}
	return SubViewNone, false
}
