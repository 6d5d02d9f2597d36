// Package landgen turns outline templates into terrain bitmaps.
//
// An OutlineTemplate describes land masses as ordered lists of rectangles.
// The generator picks one random point inside each rectangle, joins the
// points of an island into a closed outline, roughens and smooths the
// outline, then floods everything reachable from the template's fill points
// with the "zero" code. What remains is land.
package landgen

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/landsim/internal/core"
)

// MaxDimension bounds either side of a template's logical area.
const MaxDimension = 16384

// ErrInvalidTemplate is returned when a template cannot be generated from.
var ErrInvalidTemplate = errors.New("landgen: invalid outline template")

// OutlineTemplate describes the shape of a map.
type OutlineTemplate struct {
	Size       core.Size
	Islands    [][]core.Rect
	FillPoints []core.Point
	CanMirror  bool
	CanFlip    bool
}

// NewOutlineTemplate returns an empty template of the given size.
func NewOutlineTemplate(size core.Size) OutlineTemplate {
	return OutlineTemplate{Size: size}
}

// Clone returns a deep copy so the caller can hand the template off
// without sharing slices.
func (t OutlineTemplate) Clone() OutlineTemplate {
	c := t
	c.Islands = make([][]core.Rect, len(t.Islands))
	for i, island := range t.Islands {
		c.Islands[i] = append([]core.Rect(nil), island...)
	}
	c.FillPoints = append([]core.Point(nil), t.FillPoints...)
	return c
}

// Validate reports why the template cannot be generated from. Island
// rectangles may extend past the logical area by up to one area size on
// every side (outlines are clipped when drawn) but fill points must lie
// inside it.
func (t OutlineTemplate) Validate() error {
	if t.Size.Empty() {
		return fmt.Errorf("%w: empty size %dx%d", ErrInvalidTemplate, t.Size.W, t.Size.H)
	}
	if t.Size.W > MaxDimension || t.Size.H > MaxDimension {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrInvalidTemplate, t.Size.W, t.Size.H, MaxDimension)
	}
	if len(t.Islands) == 0 {
		return fmt.Errorf("%w: no islands", ErrInvalidTemplate)
	}
	for i, island := range t.Islands {
		if len(island) < 2 {
			return fmt.Errorf("%w: island %d has %d rects, need at least 2", ErrInvalidTemplate, i, len(island))
		}
		for j, r := range island {
			if r.Empty() {
				return fmt.Errorf("%w: island %d rect %d is empty", ErrInvalidTemplate, i, j)
			}
			if !t.withinMargin(r) {
				return fmt.Errorf("%w: island %d rect %d (%d,%d %dx%d) too far outside %dx%d",
					ErrInvalidTemplate, i, j, r.X, r.Y, r.W, r.H, t.Size.W, t.Size.H)
			}
		}
	}
	if len(t.FillPoints) == 0 {
		return fmt.Errorf("%w: no fill points", ErrInvalidTemplate)
	}
	for i, p := range t.FillPoints {
		if !t.Size.Contains(p) {
			return fmt.Errorf("%w: fill point %d (%d,%d) outside %dx%d", ErrInvalidTemplate, i, p.X, p.Y, t.Size.W, t.Size.H)
		}
	}
	return nil
}

// withinMargin reports whether r lies inside the logical area grown by its
// own size on every side.
func (t OutlineTemplate) withinMargin(r core.Rect) bool {
	return r.X >= -t.Size.W && r.Right() <= 2*t.Size.W &&
		r.Y >= -t.Size.H && r.Bottom() <= 2*t.Size.H
}
