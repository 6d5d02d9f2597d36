package world

import (
	"math"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/landgen"
)

// DistanceDivisor sets outline roughness for both preview and game terrain.
const DistanceDivisor = 5

// PreviewTemplate returns the fixed template previews are generated from:
// a 4096x2048 area holding one wide island, flooded from the top-left
// corner.
func PreviewTemplate() landgen.OutlineTemplate {
	t := landgen.NewOutlineTemplate(core.Sz(4096, 2048))
	t.Islands = [][]core.Rect{{
		core.NewRect(100, 2050, 1, 1),
		core.NewRect(100, 500, 400, 1200),
		core.NewRect(3600, 500, 400, 1200),
		core.NewRect(3900, 2050, 1, 1),
	}}
	t.FillPoints = []core.Point{core.Pt(1, 0)}
	return t
}

// PreviewParams generates 8-bit preview terrain: 0 for empty, 255 for land.
func PreviewParams() landgen.Parameters[uint8] {
	return landgen.NewParameters[uint8](0, math.MaxUint8, DistanceDivisor, false, false)
}

// GameParams generates 32-bit game terrain: 0 for empty, MaxUint32 for
// land.
func GameParams() landgen.Parameters[uint32] {
	return landgen.NewParameters[uint32](0, math.MaxUint32, DistanceDivisor, false, false)
}
