package checklist

import (
	"testing"
)

func listOf(total, packed int) Snapshot {
	items := make([]Item, total)
	for i := 0; i < packed; i++ {
		items[i].Packed = true
	}
	for i := range items {
		items[i].Name = "item"
	}
	return Snapshot{{Name: "All", Items: items}}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		snap        Snapshot
		wantTotal   int
		wantPacked  int
		wantPercent int
	}{
		{"nil snapshot", nil, 0, 0, 0},
		{"empty category", Snapshot{{Name: "Empty"}}, 0, 0, 0},
		{"quarter", listOf(20, 5), 20, 5, 25},
		{"rounds half up", listOf(8, 1), 8, 1, 13},
		{"rounds down", listOf(3, 1), 3, 1, 33},
		{"two thirds", listOf(3, 2), 3, 2, 67},
		{"complete", listOf(7, 7), 7, 7, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.snap)
			if got.Total != tt.wantTotal || got.Packed != tt.wantPacked || got.Percent != tt.wantPercent {
				t.Fatalf("Compute = %+v, want total=%d packed=%d percent=%d",
					got, tt.wantTotal, tt.wantPacked, tt.wantPercent)
			}
		})
	}
}

func TestCompute_AcrossCategories(t *testing.T) {
	snap := Snapshot{
		{Name: "A", Items: []Item{{Name: "a1", Packed: true}, {Name: "a2"}}},
		{Name: "B", Items: []Item{{Name: "b1", Packed: true}, {Name: "b2", Packed: true}}},
	}
	got := Compute(snap)
	if got.Total != 4 || got.Packed != 3 || got.Percent != 75 {
		t.Fatalf("Compute = %+v, want 4/3/75", got)
	}
}

func TestCompute_Bounds(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for packed := 0; packed <= total; packed++ {
			p := Compute(listOf(total, packed))
			if p.Percent < 0 || p.Percent > 100 {
				t.Fatalf("Compute(%d/%d).Percent = %d, out of bounds", packed, total, p.Percent)
			}
			if ratio := p.Ratio(); ratio < 0 || ratio > 1 {
				t.Fatalf("Ratio() = %v, out of bounds", ratio)
			}
		}
	}
}

func TestProgress_Done(t *testing.T) {
	if (Progress{}).Done() {
		t.Fatal("empty progress should not be done")
	}
	if !Compute(listOf(2, 2)).Done() {
		t.Fatal("full list should be done")
	}
	if Compute(listOf(2, 1)).Done() {
		t.Fatal("half list should not be done")
	}
}
