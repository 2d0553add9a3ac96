package checklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Item is one packable thing. Only Packed changes during a session.
type Item struct {
	Name   string `json:"name"`
	Packed bool   `json:"packed"`
}

// Category groups items under a heading and glyph.
type Category struct {
	Name  string `json:"category"`
	Icon  string `json:"icon"`
	Items []Item `json:"items"`
}

// Snapshot is the full ordered packing list at one instant.
type Snapshot []Category

// ErrSchema reports persisted data that decodes but is not a usable list.
var ErrSchema = errors.New("checklist: schema mismatch")

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	dup := make(Snapshot, len(s))
	for i, c := range s {
		dup[i] = Category{Name: c.Name, Icon: c.Icon, Items: append([]Item(nil), c.Items...)}
	}
	return dup
}

// Equal reports structural equality.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		a, b := s[i], other[i]
		if a.Name != b.Name || a.Icon != b.Icon || len(a.Items) != len(b.Items) {
			return false
		}
		for j := range a.Items {
			if a.Items[j] != b.Items[j] {
				return false
			}
		}
	}
	return true
}

// ItemCount returns the number of items across all categories.
func (s Snapshot) ItemCount() int {
	n := 0
	for _, c := range s {
		n += len(c.Items)
	}
	return n
}

// Unpacked returns a copy with every flag cleared.
func (s Snapshot) Unpacked() Snapshot {
	dup := s.Clone()
	for i := range dup {
		for j := range dup[i].Items {
			dup[i].Items[j].Packed = false
		}
	}
	return dup
}

// Encode serializes the snapshot as JSON.
func Encode(s Snapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal checklist: %w", err)
	}
	return string(data), nil
}

// Decode parses and validates a serialized snapshot.
func Decode(raw string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("unmarshal checklist: %w", err)
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func validate(s Snapshot) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no categories", ErrSchema)
	}
	for i, c := range s {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: category %d has no name", ErrSchema, i)
		}
		for j, it := range c.Items {
			if strings.TrimSpace(it.Name) == "" {
				return fmt.Errorf("%w: item %d in %q has no name", ErrSchema, j, c.Name)
			}
		}
	}
	return nil
}
