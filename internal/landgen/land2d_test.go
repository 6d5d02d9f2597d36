package landgen

import (
	"testing"

	"github.com/vovakirdan/landsim/internal/core"
)

func TestLand2DSetGet(t *testing.T) {
	l := NewLand2D[uint8](core.Sz(8, 4), 3)

	if l.Width() != 8 || l.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", l.Width(), l.Height())
	}
	if l.Count(3) != 32 {
		t.Errorf("Count(3) = %d, expected all 32 cells", l.Count(3))
	}
	if !l.Set(7, 3, 9) || l.Get(7, 3) != 9 {
		t.Error("Set/Get at the last cell failed")
	}
	if l.Set(8, 0, 1) || l.Set(0, -1, 1) {
		t.Error("out-of-bounds Set should report false")
	}
	if l.Get(-1, 0) != 0 || l.Get(0, 4) != 0 {
		t.Error("out-of-bounds Get should return 0")
	}
	if row := l.Row(3); len(row) != 8 || row[7] != 9 {
		t.Errorf("Row(3) = %v", row)
	}
	if l.Row(4) != nil {
		t.Error("Row past the end should be nil")
	}
}

func TestLand2DCloneEqualDigest(t *testing.T) {
	a := NewLand2D[uint32](core.Sz(5, 5), 0)
	a.Set(2, 2, 7)
	b := a.Clone()

	if !a.Equal(b) || a.Digest() != b.Digest() {
		t.Fatal("clone should be equal with the same digest")
	}

	b.Set(0, 0, 1)
	if a.Equal(b) {
		t.Error("clone should not share storage")
	}
	if a.Digest() == b.Digest() {
		t.Error("digest should change with content")
	}

	c := NewLand2D[uint32](core.Sz(25, 1), 0)
	if a.Equal(c) {
		t.Error("different sizes must not compare equal")
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name    string
		from    core.Point
		to      core.Point
		written int
	}{
		{"horizontal", core.Pt(0, 0), core.Pt(9, 0), 10},
		{"vertical", core.Pt(3, 0), core.Pt(3, 9), 10},
		{"diagonal", core.Pt(0, 0), core.Pt(9, 9), 10},
		{"single point", core.Pt(4, 4), core.Pt(4, 4), 1},
		{"clipped", core.Pt(-5, 2), core.Pt(4, 2), 5},
		{"fully outside", core.Pt(-5, -5), core.Pt(-1, -1), 0},
		{"far off map", core.Pt(1_000_000_000, 0), core.Pt(2_000_000_000, 9), 0},
		{"leaves the map", core.Pt(5, 5), core.Pt(1_000_000_000, 5), 5},
		{"enters from far away", core.Pt(-1_000_000, 3), core.Pt(9, 3), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLand2D[uint8](core.Sz(10, 10), 0)
			if got := l.DrawLine(tc.from, tc.to, 1); got != tc.written {
				t.Errorf("DrawLine wrote %d cells, expected %d", got, tc.written)
			}
			if tc.written > 0 && l.InBounds(tc.to.X, tc.to.Y) && l.Get(tc.to.X, tc.to.Y) != 1 {
				t.Error("end point should be drawn")
			}
		})
	}
}

func TestFillStopsAtBorder(t *testing.T) {
	l := NewLand2D[uint8](core.Sz(10, 10), 5)
	// Closed box from (2,2) to (7,7) drawn with border code 0.
	l.DrawLine(core.Pt(2, 2), core.Pt(7, 2), 0)
	l.DrawLine(core.Pt(7, 2), core.Pt(7, 7), 0)
	l.DrawLine(core.Pt(7, 7), core.Pt(2, 7), 0)
	l.DrawLine(core.Pt(2, 7), core.Pt(2, 2), 0)

	filled := l.Fill(core.Pt(0, 0), 0, 0)
	if filled != 100-36 {
		t.Errorf("Fill changed %d cells, expected %d", filled, 100-36)
	}
	if l.Get(4, 4) != 5 {
		t.Error("fill leaked into the enclosed box")
	}
	if l.Get(9, 9) != 0 {
		t.Error("outside corner should be filled")
	}

	if n := l.Fill(core.Pt(2, 2), 0, 0); n != 0 {
		t.Errorf("starting on the border should fill nothing, filled %d", n)
	}
	if n := l.Fill(core.Pt(-1, 0), 0, 0); n != 0 {
		t.Errorf("starting outside should fill nothing, filled %d", n)
	}
}

func TestFillDistinctCodes(t *testing.T) {
	l := NewLand2D[uint32](core.Sz(6, 3), 1)
	l.DrawLine(core.Pt(3, 0), core.Pt(3, 2), 9)

	if n := l.Fill(core.Pt(0, 1), 9, 4); n != 9 {
		t.Errorf("Fill changed %d cells, expected 9", n)
	}
	if l.Get(5, 1) != 1 {
		t.Error("fill crossed the border column")
	}
	if n := l.Fill(core.Pt(0, 1), 9, 4); n != 0 {
		t.Errorf("refilling with the same code should be a no-op, filled %d", n)
	}
}
