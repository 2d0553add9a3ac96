package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/checklist"
)

func defaultTrip(t *testing.T) *catalog.Trip {
	t.Helper()
	trip, err := catalog.Default()
	require.NoError(t, err)
	return trip
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-5, 10), "  0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
	assert.Equal(t, 10, strings.Count(RenderProgress(100, 10), filledBlock))
	assert.Equal(t, 5, strings.Count(RenderProgress(50, 10), filledBlock))
	assert.Equal(t, 2, strings.Count(RenderProgress(0, 0), emptyBlock), "width is at least two cells")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONG HEADER"}, [][]string{{"wide cell", "x"}, {"y"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONG"), strings.Index(lines[2], "x"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatDayList_HasEveryDay(t *testing.T) {
	trip := defaultTrip(t)
	out := FormatDayList(trip, 100)
	for _, d := range trip.Days {
		assert.Contains(t, out, d.Date)
	}
	assert.Contains(t, out, "THEME")
}

func TestFormatDay_ShowsStopsAndLegs(t *testing.T) {
	trip := defaultTrip(t)
	day, ok := trip.Day(1)
	require.True(t, ok)

	out := FormatDay(day, 100)
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Ritsurin Garden")
	assert.Contains(t, out, "Stay about 2 hours")
	assert.Contains(t, out, "https://maps.app.goo.gl/ritsurin-parking")
	assert.Contains(t, out, "↓ 🚗 20 min")
}

func TestFormatFlights(t *testing.T) {
	out := FormatFlights(defaultTrip(t).Flights)
	assert.Contains(t, out, "VZ566")
	assert.Contains(t, out, "CI153")
	assert.Contains(t, out, "→")
}

func TestFormatStaysAndGuide(t *testing.T) {
	trip := defaultTrip(t)
	assert.Contains(t, FormatStays(trip.Accommodations), trip.Accommodations[0].Name)

	g, ok := trip.Guide("worship")
	require.True(t, ok)
	out := FormatGuide(g)
	assert.Contains(t, out, "Shrines")
	assert.Contains(t, out, "• Bow once at the torii")
}

func TestFormatPacking_NumbersAndProgress(t *testing.T) {
	trip := defaultTrip(t)
	list := trip.PackingTemplate()
	list[0].Items[0].Packed = true

	out := FormatPacking(PackingData{
		List:           list,
		Progress:       checklist.Compute(list),
		ImportantNotes: trip.ImportantNotes,
		PowerBankRules: trip.PowerBankRules,
	})
	assert.Contains(t, out, "1.1  [x] Passport")
	assert.Contains(t, out, "1.2  [ ]")
	assert.Contains(t, out, "1/")
	assert.Contains(t, out, "Under 100 Wh")
	assert.Contains(t, out, "Important")
	assert.NotContains(t, out, "ready to go")
}

func TestFormatPacking_Done(t *testing.T) {
	list := checklist.Snapshot{{Name: "Bag", Items: []checklist.Item{{Name: "Socks", Packed: true}}}}
	out := FormatPacking(PackingData{List: list, Progress: checklist.Compute(list)})
	assert.Contains(t, out, "ready to go")
	assert.Contains(t, out, "100%")
}

func TestFormatOverview(t *testing.T) {
	trip := defaultTrip(t)
	out := FormatOverview(trip, checklist.Progress{Total: 10, Packed: 5, Percent: 50}, 20)
	assert.Contains(t, out, trip.Title)
	assert.Contains(t, out, "5/10")
	assert.Contains(t, out, " 50%")
}
