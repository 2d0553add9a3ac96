package checklist

import "math"

// Progress summarizes how much of a list is packed.
type Progress struct {
	Total   int
	Packed  int
	Percent int // 0..100, rounded half away from zero
}

// Compute derives progress for the whole snapshot.
func Compute(s Snapshot) Progress {
	var p Progress
	for _, c := range s {
		cp := ComputeCategory(c)
		p.Total += cp.Total
		p.Packed += cp.Packed
	}
	p.Percent = percent(p.Packed, p.Total)
	return p
}

// ComputeCategory derives progress for a single category.
func ComputeCategory(c Category) Progress {
	p := Progress{Total: len(c.Items)}
	for _, it := range c.Items {
		if it.Packed {
			p.Packed++
		}
	}
	p.Percent = percent(p.Packed, p.Total)
	return p
}

// Ratio returns Percent as a 0..1 fraction for progress bars.
func (p Progress) Ratio() float64 {
	return float64(p.Percent) / 100
}

// Done reports whether every item is packed. An empty list is never done.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Packed == p.Total
}

func percent(packed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(packed) / float64(total) * 100))
}
