package checklist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/wayfarer/internal/storage"
)

// DefaultKey is the storage key the packing list lives under.
const DefaultKey = "userPackingList"

// ErrOutOfRange is returned by Toggle for indices outside the snapshot.
var ErrOutOfRange = errors.New("checklist: index out of range")

// Reconcile decides how a persisted list meets the current template.
type Reconcile int

const (
	// ReconcileMerge rebuilds the list from the template and carries over
	// packed flags matched by category name and item name. Template items
	// missing from storage start unpacked; stored items no longer in the
	// template are dropped.
	ReconcileMerge Reconcile = iota
	// ReconcileVerbatim uses the stored list as-is and ignores the template.
	ReconcileVerbatim
)

// String returns the config spelling of the policy.
func (r Reconcile) String() string {
	if r == ReconcileVerbatim {
		return "verbatim"
	}
	return "merge"
}

// ParseReconcile maps a config value to a policy. Unknown values return
// ReconcileMerge and false.
func ParseReconcile(s string) (Reconcile, bool) {
	switch s {
	case "merge", "":
		return ReconcileMerge, true
	case "verbatim":
		return ReconcileVerbatim, true
	default:
		return ReconcileMerge, false
	}
}

// Option configures Load.
type Option func(*Manager)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(m *Manager) { m.key = key }
}

// WithReconcile selects the reconciliation policy.
func WithReconcile(r Reconcile) Option {
	return func(m *Manager) { m.reconcile = r }
}

// WithLogger sets the logger used for swallowed storage and parse errors.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// Manager owns the packing list for a session. It is not safe for
// concurrent use; the session store serializes access.
type Manager struct {
	kv        storage.KV
	key       string
	reconcile Reconcile
	log       *zap.Logger

	snapshot Snapshot
	restored bool
}

// Load builds a manager from storage, falling back to a fresh copy of the
// template when nothing usable is stored. It never fails.
func Load(kv storage.KV, template Snapshot, opts ...Option) *Manager {
	m := &Manager{
		kv:  kv,
		key: DefaultKey,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	fresh := template.Unpacked()
	stored, ok := m.read()
	if !ok {
		m.snapshot = fresh
		return m
	}

	m.restored = true
	if m.reconcile == ReconcileVerbatim {
		m.snapshot = stored
	} else {
		m.snapshot = merge(fresh, stored)
	}
	m.log.Debug("packing list restored",
		zap.String("key", m.key),
		zap.Stringer("reconcile", m.reconcile),
		zap.Int("items", m.snapshot.ItemCount()),
	)
	return m
}

func (m *Manager) read() (Snapshot, bool) {
	if m.kv == nil {
		return nil, false
	}
	raw, ok, err := m.kv.Get(m.key)
	if err != nil {
		m.log.Warn("packing list unreadable, using template", zap.String("key", m.key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	stored, err := Decode(raw)
	if err != nil {
		m.log.Warn("packing list malformed, using template", zap.String("key", m.key), zap.Error(err))
		return nil, false
	}
	return stored, true
}

func merge(template, stored Snapshot) Snapshot {
	packed := make(map[string]map[string]bool, len(stored))
	for _, c := range stored {
		items := packed[c.Name]
		if items == nil {
			items = make(map[string]bool, len(c.Items))
			packed[c.Name] = items
		}
		for _, it := range c.Items {
			items[it.Name] = items[it.Name] || it.Packed
		}
	}
	for i := range template {
		items := packed[template[i].Name]
		for j := range template[i].Items {
			template[i].Items[j].Packed = items[template[i].Items[j].Name]
		}
	}
	return template
}

// Restored reports whether the list came from storage rather than the template.
func (m *Manager) Restored() bool {
	return m.restored
}

// Snapshot returns a copy of the current list.
func (m *Manager) Snapshot() Snapshot {
	return m.snapshot.Clone()
}

// Toggle flips one item's packed flag and persists the whole list. The new
// list replaces the old one only once it is fully built, so readers never
// see a partial update. A storage failure is logged and otherwise ignored.
func (m *Manager) Toggle(categoryIndex, itemIndex int) error {
	if categoryIndex < 0 || categoryIndex >= len(m.snapshot) {
		return fmt.Errorf("%w: category %d of %d", ErrOutOfRange, categoryIndex, len(m.snapshot))
	}
	items := m.snapshot[categoryIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return fmt.Errorf("%w: item %d of %d in %q", ErrOutOfRange, itemIndex, len(items), m.snapshot[categoryIndex].Name)
	}

	next := m.snapshot.Clone()
	item := &next[categoryIndex].Items[itemIndex]
	item.Packed = !item.Packed

	m.persist(next)
	m.snapshot = next
	return nil
}

func (m *Manager) persist(s Snapshot) {
	if m.kv == nil {
		return
	}
	raw, err := Encode(s)
	if err != nil {
		m.log.Warn("packing list not saved", zap.Error(err))
		return
	}
	if err := m.kv.Set(m.key, raw); err != nil {
		m.log.Warn("packing list not saved", zap.String("key", m.key), zap.Error(err))
	}
}
