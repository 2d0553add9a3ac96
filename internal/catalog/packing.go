package catalog

import "github.com/five82/wayfarer/internal/checklist"

// PackingTemplate returns a fresh, fully unpacked checklist seeded from the
// trip's packing list.
func (t *Trip) PackingTemplate() checklist.Snapshot {
	out := make(checklist.Snapshot, 0, len(t.PackingList))
	for _, c := range t.PackingList {
		cat := checklist.Category{Name: c.Name, Icon: c.Icon, Items: make([]checklist.Item, len(c.Items))}
		for i, name := range c.Items {
			cat.Items[i] = checklist.Item{Name: name}
		}
		out = append(out, cat)
	}
	return out
}
