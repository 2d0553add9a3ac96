package state

import (
	"sync"

	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/nav"
)

// Snapshot is everything the presentation layer renders from.
type Snapshot struct {
	Nav       nav.State
	Screen    nav.Screen
	Checklist checklist.Snapshot
	Progress  checklist.Progress
}

// Store owns a session's navigation and checklist state. Views receive a
// *Store and change state only through its methods.
type Store struct {
	mu        sync.RWMutex
	content   nav.Content
	router    *nav.Router
	checklist *checklist.Manager
}

// New builds a store over the given collaborators.
func New(content nav.Content, router *nav.Router, list *checklist.Manager) *Store {
	return &Store{content: content, router: router, checklist: list}
}

// SelectTab switches the top-level tab.
func (s *Store) SelectTab(tab nav.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.SelectTab(tab)
}

// OpenSubView opens a menu page; it reports whether anything changed.
func (s *Store) OpenSubView(v nav.SubView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.OpenSubView(v)
}

// CloseSubView returns to the menu root.
func (s *Store) CloseSubView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.CloseSubView()
}

// SelectDay records the itinerary day on screen.
func (s *Store) SelectDay(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.SelectDay(n)
}

// Toggle flips a packing item. See checklist.Manager.Toggle.
func (s *Store) Toggle(categoryIndex, itemIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checklist.Toggle(categoryIndex, itemIndex)
}

// Snapshot returns a copy of the current state with derived fields filled in.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	navState := s.router.State()
	list := s.checklist.Snapshot()
	return Snapshot{
		Nav:       navState,
		Screen:    navState.Resolve(s.content),
		Checklist: list,
		Progress:  checklist.Compute(list),
	}
}

// DayPolicy returns the router's day policy.
func (s *Store) DayPolicy() nav.DayPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.router.DayPolicy()
}
