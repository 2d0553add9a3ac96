package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed trip.yaml
var defaultTrip []byte

// Page names that are not guides.
const (
	PageFlights       = "flights"
	PagePacking       = "packing"
	PageAccommodation = "accommodation"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("catalog: invalid trip")

// Default decodes the embedded trip.
func Default() (*Trip, error) {
	return Parse(defaultTrip)
}

// Load reads a trip from path, or the embedded trip when path is empty.
func Load(path string) (*Trip, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	trip, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trip, nil
}

// Parse decodes and validates YAML trip data. Unknown fields are rejected so
// typos in hand-edited files surface at startup.
func Parse(data []byte) (*Trip, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var trip Trip
	if err := dec.Decode(&trip); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := trip.validate(); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (t *Trip) validate() error {
	if len(t.Days) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalid)
	}
	seen := make(map[int]bool, len(t.Days))
	for i, d := range t.Days {
		if d.Number <= 0 {
			return fmt.Errorf("%w: day %d has number %d", ErrInvalid, i, d.Number)
		}
		if seen[d.Number] {
			return fmt.Errorf("%w: day %d listed twice", ErrInvalid, d.Number)
		}
		seen[d.Number] = true
	}
	// Saved packing lists are matched back to the template by name.
	categories := make(map[string]bool, len(t.PackingList))
	for i, c := range t.PackingList {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: packing category %d has no name", ErrInvalid, i)
		}
		if categories[c.Name] {
			return fmt.Errorf("%w: packing category %q listed twice", ErrInvalid, c.Name)
		}
		categories[c.Name] = true
		items := make(map[string]bool, len(c.Items))
		for j, item := range c.Items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: packing item %d in %q is empty", ErrInvalid, j, c.Name)
			}
			if items[item] {
				return fmt.Errorf("%w: packing item %q listed twice in %q", ErrInvalid, item, c.Name)
			}
			items[item] = true
		}
	}
	for name := range t.Guides {
		if name != strings.ToLower(name) {
			return fmt.Errorf("%w: guide key %q must be lower case", ErrInvalid, name)
		}
	}
	return nil
}

// Day returns the day numbered n.
func (t *Trip) Day(n int) (Day, bool) {
	for _, d := range t.Days {
		if d.Number == n {
			return d, true
		}
	}
	return Day{}, false
}

// HasDay reports whether day n exists.
func (t *Trip) HasDay(n int) bool {
	_, ok := t.Day(n)
	return ok
}

// FirstDay returns the first day's number.
func (t *Trip) FirstDay() int {
	if len(t.Days) == 0 {
		return 0
	}
	return t.Days[0].Number
}

// DayNumbers returns day numbers in itinerary order.
func (t *Trip) DayNumbers() []int {
	out := make([]int, len(t.Days))
	for i, d := range t.Days {
		out[i] = d.Number
	}
	return out
}

// Guide returns the guide page with the given name.
func (t *Trip) Guide(name string) (Guide, bool) {
	g, ok := t.Guides[strings.ToLower(name)]
	return g, ok
}

// HasPage reports whether the menu page called name has content.
func (t *Trip) HasPage(name string) bool {
	switch name {
	case PageFlights:
		return t.Flights.Outbound.Number != "" || t.Flights.Inbound.Number != ""
	case PagePacking:
		return len(t.PackingList) > 0
	case PageAccommodation:
		return len(t.Accommodations) > 0
	default:
		_, ok := t.Guide(name)
		return ok
	}
}
