// Package nav models which screen is visible.
//
// # States
//
//	Itinerary ──SelectTab(Menu)──> Menu.Root ──OpenSubView(v)──> Menu.<v>
//	    ^                              │  ^                          │
//	    └──────SelectTab(Itinerary)────┘  └───────CloseSubView───────┘
//
// Leaving the menu always discards the open sub-view. There is no history
// stack; CloseSubView is the only way back and it always lands on the root.
//
// # Day Selection
//
// The DaySelector is independent of the tab. DayPolicyPersistent keeps a day
// selected for the whole session and is the default; DayPolicyReset mirrors
// a simpler list-first flow where every tab change clears the day.
//
// Selections are stored unvalidated. State.Resolve checks them against the
// reference data and falls back to the day list or the menu root, so a stale
// or bogus day never produces an empty screen.
package nav
