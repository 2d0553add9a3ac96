package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/storage"
)

func newStore(t *testing.T, policy nav.DayPolicy) (*Store, *storage.MemKV) {
	t.Helper()
	trip, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	kv := storage.NewMemKV()
	list := checklist.Load(kv, trip.PackingTemplate())
	return New(trip, nav.NewRouter(policy, trip.FirstDay()), list), kv
}

func TestStore_InitialSnapshot(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)

	snap := s.Snapshot()
	if snap.Nav.ActiveTab != nav.TabItinerary || snap.Nav.ActiveSubView != nav.SubViewNone {
		t.Fatalf("initial nav = %+v, want itinerary with no sub-view", snap.Nav)
	}
	if snap.Nav.SelectedDay != 1 || snap.Screen != nav.ScreenDayDetail {
		t.Fatalf("initial day = %d screen = %v, want day 1 detail", snap.Nav.SelectedDay, snap.Screen)
	}
	if snap.Progress.Packed != 0 || snap.Progress.Total == 0 || snap.Progress.Percent != 0 {
		t.Fatalf("initial progress = %+v", snap.Progress)
	}
}

func TestStore_ToggleUpdatesProgress(t *testing.T) {
	s, kv := newStore(t, nav.DayPolicyPersistent)

	if err := s.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	snap := s.Snapshot()
	if !snap.Checklist[0].Items[0].Packed {
		t.Fatal("item (0,0) not packed")
	}
	if snap.Progress.Packed != 1 {
		t.Fatalf("Progress.Packed = %d, want 1", snap.Progress.Packed)
	}
	if _, ok, _ := kv.Get(checklist.DefaultKey); !ok {
		t.Fatal("toggle was not persisted")
	}
}

func TestStore_ToggleOutOfRange(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)
	if err := s.Toggle(100, 0); !errors.Is(err, checklist.ErrOutOfRange) {
		t.Fatalf("Toggle(100,0) err = %v, want ErrOutOfRange", err)
	}
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)

	snap := s.Snapshot()
	snap.Checklist[0].Items[0].Packed = true

	if s.Snapshot().Checklist[0].Items[0].Packed {
		t.Fatal("Snapshot should clone the checklist")
	}
}

func TestStore_MenuRoundTrip(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)

	s.SelectTab(nav.TabMenu)
	if !s.OpenSubView(nav.SubViewFlights) {
		t.Fatal("OpenSubView(Flights) on menu should apply")
	}
	if got := s.Snapshot().Screen; got != nav.ScreenSubView {
		t.Fatalf("screen = %v, want sub-view", got)
	}
	s.SelectTab(nav.TabItinerary)
	s.SelectTab(nav.TabMenu)

	snap := s.Snapshot()
	if snap.Nav.ActiveSubView != nav.SubViewNone || snap.Screen != nav.ScreenMenuRoot {
		t.Fatalf("re-entered menu at %+v / %v, want root", snap.Nav, snap.Screen)
	}

	s.OpenSubView(nav.SubViewPacking)
	s.CloseSubView()
	if got := s.Snapshot().Screen; got != nav.ScreenMenuRoot {
		t.Fatalf("screen after close = %v, want menu root", got)
	}
}

func TestStore_UnknownDayShowsList(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)

	s.SelectDay(99)

	if got := s.Snapshot().Screen; got != nav.ScreenDayList {
		t.Fatalf("screen = %v, want day list", got)
	}
}

func TestStore_ResetPolicy(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyReset)
	if s.DayPolicy() != nav.DayPolicyReset {
		t.Fatalf("DayPolicy = %v", s.DayPolicy())
	}
	if got := s.Snapshot().Screen; got != nav.ScreenDayList {
		t.Fatalf("reset policy starts on %v, want day list", got)
	}
	s.SelectDay(2)
	s.SelectTab(nav.TabMenu)
	s.SelectTab(nav.TabItinerary)
	if got := s.Snapshot().Nav.SelectedDay; got != nav.NoDay {
		t.Fatalf("SelectedDay = %d after tab change, want NoDay", got)
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s, _ := newStore(t, nav.DayPolicyPersistent)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	for i := 0; i < 20; i++ {
		_ = s.Toggle(0, 0)
		s.SelectDay(i%9 + 1)
	}
	wg.Wait()

	if got := s.Snapshot().Checklist[0].Items[0].Packed; got {
		t.Fatal("even number of toggles should leave the item unpacked")
	}
}
