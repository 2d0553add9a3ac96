package checklist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/wayfarer/internal/storage"
)

func template() Snapshot {
	return Snapshot{
		{Name: "Documents", Icon: "🛂", Items: []Item{{Name: "Passport"}, {Name: "Driving permit"}}},
		{Name: "Electronics", Icon: "🔌", Items: []Item{{Name: "Power bank"}, {Name: "Adapter"}, {Name: "eSIM"}}},
	}
}

// failingKV refuses every operation.
type failingKV struct{ sets int }

func (f *failingKV) Get(string) (string, bool, error) { return "", false, errors.New("disabled") }
func (f *failingKV) Set(string, string) error {
	f.sets++
	return errors.New("quota exceeded")
}

func TestLoad_EmptyStorageUsesTemplate(t *testing.T) {
	m := Load(storage.NewMemKV(), template())

	assert.True(t, m.Snapshot().Equal(template()))
	assert.False(t, m.Restored())
}

func TestLoad_TemplateFlagsAreCleared(t *testing.T) {
	tpl := template()
	tpl[0].Items[0].Packed = true

	m := Load(storage.NewMemKV(), tpl)

	assert.False(t, m.Snapshot()[0].Items[0].Packed)
	assert.True(t, tpl[0].Items[0].Packed, "template must not be mutated")
}

func TestLoad_CorruptStorageFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{not json"},
		{"null", "null"},
		{"empty array", "[]"},
		{"wrong shape", `{"category":"Documents"}`},
		{"unnamed category", `[{"category":"","items":[]}]`},
		{"unnamed item", `[{"category":"Documents","items":[{"name":" ","packed":true}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemKV()
			require.NoError(t, kv.Set(DefaultKey, tt.raw))

			core, logs := observer.New(zapcore.WarnLevel)
			m := Load(kv, template(), WithLogger(zap.New(core)))

			snap := m.Snapshot()
			assert.True(t, snap.Equal(template()))
			assert.Equal(t, 0, Compute(snap).Packed)
			assert.False(t, m.Restored())
			assert.Equal(t, 1, logs.FilterMessage("packing list malformed, using template").Len())
		})
	}
}

func TestLoad_UnreadableStorageFallsBack(t *testing.T) {
	m := Load(&failingKV{}, template())
	assert.True(t, m.Snapshot().Equal(template()))
}

func TestToggle_FlipsExactlyOneItem(t *testing.T) {
	m := Load(storage.NewMemKV(), template())

	require.NoError(t, m.Toggle(0, 0))

	snap := m.Snapshot()
	assert.Equal(t, Item{Name: "Passport", Packed: true}, snap[0].Items[0])
	assert.Equal(t, 1, ComputeCategory(snap[0]).Packed)
	assert.Equal(t, 1, Compute(snap).Packed)
	assert.Equal(t, template().ItemCount(), snap.ItemCount())
}

func TestToggle_TwiceRestores(t *testing.T) {
	for c, cat := range template() {
		for i := range cat.Items {
			m := Load(storage.NewMemKV(), template())
			require.NoError(t, m.Toggle(1, 2)) // unrelated prior state
			before := m.Snapshot()

			require.NoError(t, m.Toggle(c, i))
			require.NoError(t, m.Toggle(c, i))

			assert.True(t, m.Snapshot().Equal(before), "toggle(%d,%d) twice", c, i)
		}
	}
}

func TestToggle_OutOfRange(t *testing.T) {
	m := Load(storage.NewMemKV(), template())

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {1, 3}} {
		err := m.Toggle(idx[0], idx[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", idx)
	}
	assert.True(t, m.Snapshot().Equal(template()))
}

func TestToggle_PersistsAndReloads(t *testing.T) {
	kv := storage.NewMemKV()
	m := Load(kv, template())
	require.NoError(t, m.Toggle(0, 1))
	require.NoError(t, m.Toggle(1, 0))

	reloaded := Load(kv, template())

	assert.True(t, reloaded.Restored())
	assert.True(t, reloaded.Snapshot().Equal(m.Snapshot()))
}

func TestToggle_StorageFailureIsSwallowed(t *testing.T) {
	kv := &failingKV{}
	core, logs := observer.New(zapcore.WarnLevel)
	m := Load(kv, template(), WithLogger(zap.New(core)))

	require.NoError(t, m.Toggle(0, 0))

	assert.True(t, m.Snapshot()[0].Items[0].Packed)
	assert.Equal(t, 1, kv.sets)
	assert.Equal(t, 1, logs.FilterMessage("packing list not saved").Len())
}

func TestToggle_CustomKey(t *testing.T) {
	kv := storage.NewMemKV()
	m := Load(kv, template(), WithKey("trip/packing"))
	require.NoError(t, m.Toggle(0, 0))

	_, ok, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, err := kv.Get("trip/packing")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"packed":true`)
}

func TestSnapshot_IsACopy(t *testing.T) {
	m := Load(storage.NewMemKV(), template())

	snap := m.Snapshot()
	snap[0].Items[0].Packed = true

	assert.False(t, m.Snapshot()[0].Items[0].Packed)
}

func TestLoad_MergeAdoptsTemplateChanges(t *testing.T) {
	kv := storage.NewMemKV()
	old := Snapshot{
		{Name: "Documents", Icon: "🛂", Items: []Item{{Name: "Passport", Packed: true}, {Name: "Visa", Packed: true}}},
		{Name: "Electronics", Icon: "🔌", Items: []Item{{Name: "Adapter", Packed: true}}},
	}
	raw, err := Encode(old)
	require.NoError(t, err)
	require.NoError(t, kv.Set(DefaultKey, raw))

	snap := Load(kv, template()).Snapshot()

	want := template()
	want[0].Items[0].Packed = true // Passport kept
	want[1].Items[1].Packed = true // Adapter kept, new items unpacked, Visa dropped
	assert.True(t, snap.Equal(want), "got %+v", snap)
}

func TestLoad_VerbatimIgnoresTemplate(t *testing.T) {
	kv := storage.NewMemKV()
	old := Snapshot{{Name: "Snacks", Icon: "🍙", Items: []Item{{Name: "Onigiri", Packed: true}}}}
	raw, err := Encode(old)
	require.NoError(t, err)
	require.NoError(t, kv.Set(DefaultKey, raw))

	snap := Load(kv, template(), WithReconcile(ReconcileVerbatim)).Snapshot()

	assert.True(t, snap.Equal(old))
}

func TestParseReconcile(t *testing.T) {
	r, ok := ParseReconcile("verbatim")
	assert.True(t, ok)
	assert.Equal(t, ReconcileVerbatim, r)

	r, ok = ParseReconcile("")
	assert.True(t, ok)
	assert.Equal(t, ReconcileMerge, r)

	_, ok = ParseReconcile("latest")
	assert.False(t, ok)
	assert.Equal(t, "verbatim", ReconcileVerbatim.String())
}

func TestLoad_NilStorage(t *testing.T) {
	m := Load(nil, template())
	require.NoError(t, m.Toggle(0, 0))
	assert.True(t, m.Snapshot()[0].Items[0].Packed)
}
