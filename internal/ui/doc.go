// Package ui provides the interactive terminal interface for wayfarer.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It never owns trip state: every key
// that changes navigation or the packing list calls a method on
// state.Store and then schedules a snapshot command, and every frame is
// rendered from the latest state.Snapshot. Only presentation state lives in
// the model (cursors, scroll offsets, theme, the help overlay).
//
// # Package Structure
//
//   - app.go: Model, key dispatch per screen, Run
//   - body.go: viewport refresh and screen dispatch
//   - header.go: title line, tab strip and footer
//   - itinerary.go: day strip, day detail and day list
//   - menu.go: menu root and sub-page dispatch
//   - pages.go: flights, accommodation, packing and guide pages
//   - keys.go / help.go: bindings and the help overlay built from them
//   - theme.go / style_helpers.go: palettes and lipgloss helpers
//
// # Screens
//
// The screen comes from nav.State.Resolve, so the UI draws exactly what the
// router decided:
//
//   - Day detail: chip strip for every day, then the stops of the selected day
//   - Day list: every day as a selectable row; shown when no day (or an
//     unknown day) is selected
//   - Menu root: the informational pages, with pages the trip lacks dimmed
//   - Sub-view: one page; the packing page adds a cursor, a progress bar and
//     the power bank rules toggled with "d"
//
// # Preferences
//
// Theme changes ("T") and the power bank toggle are written to prefs.toml
// immediately. A failed save is logged and shown in the footer; the session
// carries on with the new value in memory.
package ui
