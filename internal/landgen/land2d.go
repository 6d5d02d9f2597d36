package landgen

import (
	"hash/fnv"

	"github.com/vovakirdan/landsim/internal/core"
)

// Code is the element type of a terrain bitmap. Preview terrain uses
// 8-bit codes; game terrain uses 32-bit codes.
type Code interface {
	~uint8 | ~uint32
}

// Land2D is a row-major grid of land-type codes: index = y*W + x.
type Land2D[T Code] struct {
	size   core.Size
	pixels []T
}

// NewLand2D allocates a bitmap of the given size with every cell set to
// fill.
func NewLand2D[T Code](size core.Size, fill T) *Land2D[T] {
	l := &Land2D[T]{
		size:   core.Sz(core.Max(size.W, 0), core.Max(size.H, 0)),
		pixels: make([]T, core.Max(size.W, 0)*core.Max(size.H, 0)),
	}
	if fill != 0 {
		for i := range l.pixels {
			l.pixels[i] = fill
		}
	}
	return l
}

// Size returns the bitmap dimensions.
func (l *Land2D[T]) Size() core.Size {
	return l.size
}

// Width returns the number of columns.
func (l *Land2D[T]) Width() int {
	return l.size.W
}

// Height returns the number of rows.
func (l *Land2D[T]) Height() int {
	return l.size.H
}

// InBounds reports whether (x, y) addresses a cell.
func (l *Land2D[T]) InBounds(x, y int) bool {
	return x >= 0 && x < l.size.W && y >= 0 && y < l.size.H
}

// Get returns the code at (x, y), or 0 outside the bitmap.
func (l *Land2D[T]) Get(x, y int) T {
	if !l.InBounds(x, y) {
		return 0
	}
	return l.pixels[y*l.size.W+x]
}

// Set writes a code. Out-of-bounds writes are dropped and report false.
func (l *Land2D[T]) Set(x, y int, v T) bool {
	if !l.InBounds(x, y) {
		return false
	}
	l.pixels[y*l.size.W+x] = v
	return true
}

// Row returns row y. The slice aliases the bitmap and must not be
// modified by callers outside this package.
func (l *Land2D[T]) Row(y int) []T {
	if y < 0 || y >= l.size.H {
		return nil
	}
	return l.pixels[y*l.size.W : (y+1)*l.size.W]
}

// Count returns how many cells hold v.
func (l *Land2D[T]) Count(v T) int {
	n := 0
	for _, p := range l.pixels {
		if p == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (l *Land2D[T]) Clone() *Land2D[T] {
	c := &Land2D[T]{size: l.size, pixels: make([]T, len(l.pixels))}
	copy(c.pixels, l.pixels)
	return c
}

// Equal reports whether both bitmaps have the same size and content.
func (l *Land2D[T]) Equal(o *Land2D[T]) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.size != o.size {
		return false
	}
	for i := range l.pixels {
		if l.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}

// Digest returns an FNV-1a hash of the size and every cell.
func (l *Land2D[T]) Digest() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	put := func(v uint32) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf[:])
	}
	put(uint32(l.size.W)) //#nosec G115 -- hash computation
	put(uint32(l.size.H)) //#nosec G115 -- hash computation
	for _, p := range l.pixels {
		put(uint32(p))
	}
	return h.Sum64()
}

// DrawLine draws a Bresenham line between two points, inclusive, clipped
// to the bitmap. Returns the number of cells written.
func (l *Land2D[T]) DrawLine(from, to core.Point, v T) int {
	if l.outsideSameSide(from, to) {
		return 0
	}
	dx := core.Abs(to.X - from.X)
	dy := -core.Abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	written := 0
	x, y := from.X, from.Y
	err := dx + dy
	for {
		if l.Set(x, y, v) {
			written++
		} else if written > 0 {
			// Both coordinates move monotonically, so a line that has left
			// the bitmap never comes back.
			return written
		}
		if x == to.X && y == to.Y {
			return written
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// outsideSameSide reports whether both points lie beyond the same edge of
// the bitmap, in which case no cell between them is inside it.
func (l *Land2D[T]) outsideSameSide(a, b core.Point) bool {
	w, h := l.size.W, l.size.H
	return (a.X < 0 && b.X < 0) || (a.X >= w && b.X >= w) ||
		(a.Y < 0 && b.Y < 0) || (a.Y >= h && b.Y >= h)
}

// Fill flood-fills the 4-connected region around start with fill. Cells
// equal to border (or already equal to fill) stop the fill. Returns the
// number of cells changed.
func (l *Land2D[T]) Fill(start core.Point, border, fill T) int {
	if !l.InBounds(start.X, start.Y) {
		return 0
	}
	open := func(x, y int) bool {
		v := l.pixels[y*l.size.W+x]
		return v != border && v != fill
	}
	if !open(start.X, start.Y) {
		return 0
	}

	filled := 0
	stack := []core.Point{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !open(s.X, s.Y) {
			continue
		}
		// Extend left, then right, from the seed.
		left := s.X
		for left > 0 && open(left-1, s.Y) {
			left--
		}
		right := s.X
		for right < l.size.W-1 && open(right+1, s.Y) {
			right++
		}
		row := l.pixels[s.Y*l.size.W : (s.Y+1)*l.size.W]
		for i := left; i <= right; i++ {
			row[i] = fill
		}
		filled += right - left + 1

		for _, ny := range [2]int{s.Y - 1, s.Y + 1} {
			if ny < 0 || ny >= l.size.H {
				continue
			}
			inRun := false
			for i := left; i <= right; i++ {
				if open(i, ny) {
					if !inRun {
						stack = append(stack, core.Pt(i, ny))
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
	return filled
}
