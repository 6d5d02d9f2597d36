package landgen

import (
	"fmt"
)

// TemplatedGenerator generates land from a single outline template.
type TemplatedGenerator struct {
	template OutlineTemplate
}

// NewTemplatedGenerator takes ownership of a copy of t.
func NewTemplatedGenerator(t OutlineTemplate) *TemplatedGenerator {
	return &TemplatedGenerator{template: t.Clone()}
}

// Template returns the generator's template.
func (g *TemplatedGenerator) Template() OutlineTemplate {
	return g.template.Clone()
}

// TraceOutline runs the geometric half of generation: random points, optional
// mirror/flip, distortion and smoothing. It consumes rnd exactly as
// GenerateLand does, so it is only useful for inspection and tests.
func TraceOutline[T Code](g *TemplatedGenerator, params Parameters[T], rnd RandomSource) (*Outline, error) {
	if err := g.template.Validate(); err != nil {
		return nil, err
	}

	o := outlineFromTemplate(g.template, rnd)
	if g.template.CanMirror && rnd.Next()&1 != 0 {
		o.mirror()
	}
	if g.template.CanFlip && rnd.Next()&1 != 0 {
		o.flip()
	}
	if !params.SkipDistort {
		o.distort(params.divisor(), rnd)
	}
	if !params.SkipBezier {
		o.bezierize(bezierSteps)
	}
	return o, nil
}

// GenerateLand produces a terrain bitmap of the template's size. The result
// depends only on the template, params and the state of rnd, which is
// advanced.
//
// The bitmap starts as Basic. The outline is drawn as Zero, every region
// reachable from a fill point is flooded with Zero, then the outline is
// redrawn as Basic so coastlines stay solid.
func GenerateLand[T Code](g *TemplatedGenerator, params Parameters[T], rnd RandomSource) (*Land2D[T], error) {
	if params.Zero == params.Basic {
		return nil, fmt.Errorf("%w: zero and basic codes are both %d", ErrInvalidParameters, params.Zero)
	}

	o, err := TraceOutline(g, params, rnd)
	if err != nil {
		return nil, err
	}

	land := NewLand2D(o.Size, params.Basic)
	drawOutline(land, o, params.Zero)
	for _, p := range o.FillPoints {
		land.Fill(p, params.Zero, params.Zero)
	}
	drawOutline(land, o, params.Basic)
	return land, nil
}
