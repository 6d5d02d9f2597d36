package landgen

import (
	"github.com/vovakirdan/landsim/internal/core"
)

const (
	// minSegment is the shortest edge that still gets subdivided.
	minSegment = 120

	// bezierSteps is the number of samples per smoothed corner.
	bezierSteps = 5

	maxDistortPasses = 32
)

// RandomSource is the slice of the random stream the generator consumes.
type RandomSource interface {
	Next() uint32
	Random(modulo uint32) uint32
}

// Outline is the intermediate polygon set between template and bitmap.
type Outline struct {
	Size       core.Size
	Islands    [][]core.Point
	FillPoints []core.Point
}

func outlineFromTemplate(t OutlineTemplate, rnd RandomSource) *Outline {
	o := &Outline{
		Size:       t.Size,
		Islands:    make([][]core.Point, len(t.Islands)),
		FillPoints: append([]core.Point(nil), t.FillPoints...),
	}
	for i, island := range t.Islands {
		pts := make([]core.Point, len(island))
		for j, r := range island {
			pts[j] = core.Pt(
				r.X+int(rnd.Random(uint32(r.W))), //#nosec G115 -- rect sizes are validated positive
				r.Y+int(rnd.Random(uint32(r.H))), //#nosec G115 -- rect sizes are validated positive
			)
		}
		o.Islands[i] = pts
	}
	return o
}

func (o *Outline) mirror() {
	for _, island := range o.Islands {
		for i := range island {
			island[i].X = o.Size.W - 1 - island[i].X
		}
	}
	for i := range o.FillPoints {
		o.FillPoints[i].X = o.Size.W - 1 - o.FillPoints[i].X
	}
}

func (o *Outline) flip() {
	for _, island := range o.Islands {
		for i := range island {
			island[i].Y = o.Size.H - 1 - island[i].Y
		}
	}
	for i := range o.FillPoints {
		o.FillPoints[i].Y = o.Size.H - 1 - o.FillPoints[i].Y
	}
}

// distort subdivides every edge longer than minSegment at a midpoint pushed
// along the edge normal, repeating until no edge is long enough. The
// displacement is at most length/(4*divisor), so both halves are at most
// 3/4 of the original edge.
func (o *Outline) distort(divisor int, rnd RandomSource) {
	for i, island := range o.Islands {
		for pass := 0; pass < maxDistortPasses; pass++ {
			next, split := distortPass(island, divisor, rnd)
			island = next
			if !split {
				break
			}
		}
		o.Islands[i] = island
	}
}

func distortPass(pts []core.Point, divisor int, rnd RandomSource) ([]core.Point, bool) {
	out := make([]core.Point, 0, len(pts)*2)
	split := false
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		out = append(out, a)

		d := b.Sub(a)
		length := core.Max(core.Abs(d.X), core.Abs(d.Y))
		if length < minSegment {
			continue
		}
		maxOffset := length / (4 * divisor)
		offset := int(rnd.Random(uint32(2*maxOffset+1))) - maxOffset //#nosec G115 -- bounded by segment length

		// Normal of (dx, dy) is (-dy, dx); scale it so its longer axis
		// equals offset.
		mid := core.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
		mid.X += -d.Y * offset / length
		mid.Y += d.X * offset / length
		out = append(out, mid)
		split = true
	}
	return out, split
}

// bezierize replaces every vertex with a quadratic curve running from the
// midpoint of its incoming edge to the midpoint of its outgoing edge.
func (o *Outline) bezierize(steps int) {
	s2 := steps * steps
	for i, pts := range o.Islands {
		if len(pts) < 3 {
			continue
		}
		out := make([]core.Point, 0, len(pts)*steps)
		for j, p1 := range pts {
			p0 := midpoint(pts[(j+len(pts)-1)%len(pts)], p1)
			p2 := midpoint(p1, pts[(j+1)%len(pts)])
			for k := 0; k < steps; k++ {
				u := steps - k
				out = append(out, core.Pt(
					(u*u*p0.X+2*k*u*p1.X+k*k*p2.X)/s2,
					(u*u*p0.Y+2*k*u*p1.Y+k*k*p2.Y)/s2,
				))
			}
		}
		o.Islands[i] = out
	}
}

func midpoint(a, b core.Point) core.Point {
	return core.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

func drawOutline[T Code](land *Land2D[T], o *Outline, v T) {
	for _, pts := range o.Islands {
		for i, a := range pts {
			land.DrawLine(a, pts[(i+1)%len(pts)], v)
		}
	}
}
