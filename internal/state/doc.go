// Package state provides the session store shared by every view.
//
// # Overview
//
// A Store is created once at startup and handed to the TUI or CLI by
// pointer. It bundles the navigation router and the checklist manager and
// is the only place either is mutated. There are no package-level globals.
//
// # Mutations
//
// Exactly five entry points change state:
//
//	store.SelectTab(nav.TabMenu)
//	store.OpenSubView(nav.SubViewPacking)
//	store.CloseSubView()
//	store.SelectDay(3)
//	store.Toggle(0, 2)
//
// Each runs to completion before returning. Toggle also writes the packing
// list to durable storage before it returns.
//
// # Reads
//
// Snapshot returns a copy of the navigation state, the resolved Screen, the
// checklist and its Progress:
//
//	snap := store.Snapshot()
//	switch snap.Screen {
//	case nav.ScreenDayDetail:
//		renderDay(snap.Nav.SelectedDay)
//	case nav.ScreenDayList:
//		renderDayList()
//	...
//	}
//
// The copy is deep; callers may keep or modify it freely.
//
// # Concurrency Model
//
// Bubble Tea runs commands on their own goroutines, so the store guards its
// collaborators with a sync.RWMutex:
//
//   - mutations: write lock
//   - Snapshot(): read lock
//
// There is still one logical writer per session; the lock only keeps reads
// from command goroutines consistent.
package state
