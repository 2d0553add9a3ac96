package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/wayfarer/internal/nav"
)

func TestDefault_Decodes(t *testing.T) {
	trip, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, trip.Title)
	assert.Len(t, trip.Days, 9)
	assert.Equal(t, 1, trip.FirstDay())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, trip.DayNumbers())
	assert.Equal(t, "VZ566", trip.Flights.Outbound.Number)
	assert.Equal(t, "CI153", trip.Flights.Inbound.Number)
	assert.NotEmpty(t, trip.Accommodations)
	assert.NotEmpty(t, trip.ImportantNotes)
	assert.NotEmpty(t, trip.PowerBankRules)
}

func TestDefault_HasEveryMenuPage(t *testing.T) {
	trip, err := Default()
	require.NoError(t, err)

	for _, v := range nav.SubViews {
		assert.True(t, trip.HasPage(v.String()), v.String())
	}
	assert.False(t, trip.HasPage("nightlife"))
}

func TestDefault_PackingTemplate(t *testing.T) {
	trip, err := Default()
	require.NoError(t, err)

	tpl := trip.PackingTemplate()
	require.NotEmpty(t, tpl)
	assert.Equal(t, "Documents", tpl[0].Name)
	assert.Equal(t, "Passport", tpl[0].Items[0].Name)
	for _, c := range tpl {
		for _, it := range c.Items {
			assert.False(t, it.Packed)
		}
	}

	// Each call is independent.
	tpl[0].Items[0].Packed = true
	assert.False(t, trip.PackingTemplate()[0].Items[0].Packed)
}

func TestDay_Lookup(t *testing.T) {
	trip, err := Default()
	require.NoError(t, err)

	d, ok := trip.Day(3)
	require.True(t, ok)
	assert.Equal(t, 3, d.Number)
	assert.NotEmpty(t, d.Stops)

	_, ok = trip.Day(99)
	assert.False(t, ok)
	assert.False(t, trip.HasDay(99))
}

func TestDay_LastStopHasNoTransport(t *testing.T) {
	trip, err := Default()
	require.NoError(t, err)

	for _, d := range trip.Days {
		last := d.Stops[len(d.Stops)-1]
		assert.Nil(t, last.Transport, "day %d ends with a transport leg", d.Number)
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no days", "title: x\n"},
		{"zero day number", "days:\n  - day: 0\n"},
		{"duplicate day", "days:\n  - day: 1\n  - day: 1\n"},
		{"unnamed category", "days:\n  - day: 1\npacking_list:\n  - category: ''\n"},
		{"empty item", "days:\n  - day: 1\npacking_list:\n  - category: A\n    items: ['']\n"},
		{"duplicate category", "days:\n  - day: 1\npacking_list:\n  - category: A\n    items: [x]\n  - category: A\n    items: [y]\n"},
		{"duplicate item", "days:\n  - day: 1\npacking_list:\n  - category: Clothes\n    items: [Socks, Socks]\n"},
		{"upper-case guide", "days:\n  - day: 1\nguides:\n  Worship:\n    title: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_SameItemInTwoCategories(t *testing.T) {
	trip, err := Parse([]byte("days:\n  - day: 1\npacking_list:\n  - category: Carry-on\n    items: [Charger]\n  - category: Checked\n    items: [Charger]\n"))
	require.NoError(t, err)
	assert.Len(t, trip.PackingTemplate(), 2)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("days:\n  - day: 1\n    weather: sunny\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Weekend
days:
  - day: 5
    theme: Only day
guides:
  weather:
    title: Sunny
`), 0o644))

	trip, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Weekend", trip.Title)
	assert.Equal(t, 5, trip.FirstDay())
	assert.True(t, trip.HasPage("weather"))
	assert.False(t, trip.HasPage("flights"))
	assert.False(t, trip.HasPage("packing"))
	assert.Empty(t, trip.PackingTemplate())
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	trip, err := Load("  ")
	require.NoError(t, err)
	assert.Len(t, trip.Days, 9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
