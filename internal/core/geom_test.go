package core

import "testing"

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected Rect
	}{
		{"ordered corners", Pt(0, 0), Pt(100, 50), NewRect(0, 0, 100, 50)},
		{"swapped corners", Pt(100, 50), Pt(0, 0), NewRect(0, 0, 100, 50)},
		{"mixed corners", Pt(10, 90), Pt(30, 20), NewRect(10, 20, 20, 70)},
		{"degenerate", Pt(7, 7), Pt(7, 7), NewRect(7, 7, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectFromPoints(tc.a, tc.b)
			if got != tc.expected {
				t.Errorf("RectFromPoints(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsAndEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
	if r.TopLeft() != Pt(10, 10) || r.Size() != Sz(20, 15) {
		t.Errorf("TopLeft/Size mismatch: %v %v", r.TopLeft(), r.Size())
	}
}

func TestSize(t *testing.T) {
	s := Sz(4096, 2048)
	if s.Area() != 4096*2048 {
		t.Errorf("Area() = %d", s.Area())
	}
	if s.Empty() || !Sz(0, 10).Empty() {
		t.Error("Empty() mismatch")
	}
	if !s.Contains(Pt(0, 0)) || s.Contains(Pt(4096, 0)) || s.Contains(Pt(0, -1)) {
		t.Error("Contains() mismatch")
	}
}

func TestClampMinMaxAbs(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max mismatch")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs mismatch")
	}
	if Pt(3, 4).Add(Pt(1, 1)) != Pt(4, 5) || Pt(3, 4).Sub(Pt(1, 1)) != Pt(2, 3) {
		t.Error("Point arithmetic mismatch")
	}
}
