// Package physics advances a set of gears (falling bodies) over terrain one
// fixed-point time unit at a time. The terrain is read-only here: a cell is
// solid when its land code is non-zero.
package physics

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/fpnum"
	"github.com/vovakirdan/landsim/internal/landgen"
)

// GearID identifies a gear for the lifetime of its world.
type GearID uint32

// Gear is a point body with fixed-point position and velocity.
type Gear struct {
	ID       GearID
	Position fpnum.Point
	Velocity fpnum.Point
	Resting  bool // Supported by land and not moving
}

// Cell returns the gear's position rounded to terrain coordinates.
func (g *Gear) Cell() core.Point {
	return core.Pt(g.Position.X.Round(), g.Position.Y.Round())
}

// Config holds the world constants.
type Config struct {
	Gravity  fpnum.Number // Added to vertical velocity per time unit
	MaxSpeed fpnum.Number // Per-axis speed limit per time unit
}

// DefaultConfig returns gravity of 0.25 cells per unit² and a speed limit
// of 16 cells per unit.
func DefaultConfig() Config {
	return Config{
		Gravity:  fpnum.FromRatio(1, 4),
		MaxSpeed: fpnum.FromInt(16),
	}
}

// World is the physics state for one map. It is not safe for concurrent
// use.
type World struct {
	size    core.Size
	cfg     Config
	gears   []*Gear
	nextID  GearID
	ticks   uint64
	drowned int
}

// New creates an empty world for a map of the given size, using
// DefaultConfig.
func New(size core.Size) *World {
	return &World{size: size, cfg: DefaultConfig(), nextID: 1}
}

// Restore rebuilds a world from saved state: the gears with their IDs, the
// step and drowned counters, and the ID the next added gear will get.
func Restore(size core.Size, gears []Gear, ticks uint64, drowned int, nextID GearID) *World {
	w := New(size)
	w.ticks = ticks
	w.drowned = drowned
	w.nextID = nextID
	for _, g := range gears {
		w.gears = append(w.gears, &g)
		if g.ID >= w.nextID {
			w.nextID = g.ID + 1
		}
	}
	return w
}

// Size returns the logical size the world was built for.
func (w *World) Size() core.Size {
	return w.size
}

// Ticks returns how many steps have run.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Drowned returns how many gears fell off the bottom of the map.
func (w *World) Drowned() int {
	return w.drowned
}

// NextGearID returns the ID AddGear will assign next.
func (w *World) NextGearID() GearID {
	return w.nextID
}

// AddGear places a gear at a cell position with an initial velocity.
func (w *World) AddGear(at core.Point, velocity fpnum.Point) GearID {
	id := w.nextID
	w.nextID++
	w.gears = append(w.gears, &Gear{
		ID:       id,
		Position: fpnum.Point{X: fpnum.FromInt(at.X), Y: fpnum.FromInt(at.Y)},
		Velocity: velocity,
	})
	return id
}

// Gears returns a copy of every live gear ordered by ID.
func (w *World) Gears() []Gear {
	out := make([]Gear, len(w.gears))
	for i, g := range w.gears {
		out[i] = *g
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Step advances every gear by dt against land. Gears that leave the
// bottom of the map are removed.
func (w *World) Step(dt fpnum.Number, land *landgen.Land2D[uint32]) {
	w.ticks++

	alive := w.gears[:0]
	for _, g := range w.gears {
		w.stepGear(g, dt, land)
		if g.Position.Y.Round() >= w.size.H {
			w.drowned++
			continue
		}
		alive = append(alive, g)
	}
	for i := len(alive); i < len(w.gears); i++ {
		w.gears[i] = nil
	}
	w.gears = alive
}

func (w *World) stepGear(g *Gear, dt fpnum.Number, land *landgen.Land2D[uint32]) {
	if g.Resting {
		c := g.Cell()
		if solid(land, c.X, c.Y+1) {
			return
		}
		g.Resting = false
	}

	g.Velocity.Y = fpnum.Clamp(g.Velocity.Y.Add(w.cfg.Gravity.Mul(dt)), -w.cfg.MaxSpeed, w.cfg.MaxSpeed)
	g.Velocity.X = fpnum.Clamp(g.Velocity.X, -w.cfg.MaxSpeed, w.cfg.MaxSpeed)

	delta := g.Velocity.Scale(dt)
	target := g.Position.Add(delta)

	// Sweep in sub-cell increments so fast gears cannot tunnel through
	// thin land and always come to rest next to what they hit.
	steps := core.Max(delta.X.Abs().Int(), delta.Y.Abs().Int()) + 1
	last := g.Position
	for i := 1; i <= steps; i++ {
		p := fpnum.Point{
			X: g.Position.X.Add(delta.X.MulInt(i).DivInt(steps)),
			Y: g.Position.Y.Add(delta.Y.MulInt(i).DivInt(steps)),
		}
		if solid(land, p.X.Round(), p.Y.Round()) {
			g.Position = last
			g.Velocity = fpnum.Point{}
			g.Resting = true
			return
		}
		last = p
	}
	g.Position = target

	w.clampToWalls(g)
}

// clampToWalls keeps gears inside the horizontal bounds, stopping
// horizontal motion at the edge.
func (w *World) clampToWalls(g *Gear) {
	maxX := fpnum.FromInt(w.size.W - 1)
	if g.Position.X < 0 {
		g.Position.X = 0
		g.Velocity.X = 0
	} else if g.Position.X > maxX {
		g.Position.X = maxX
		g.Velocity.X = 0
	}
}

func solid(land *landgen.Land2D[uint32], x, y int) bool {
	if land == nil {
		return false
	}
	return land.Get(x, y) != 0
}

// Digest hashes the tick count and every gear. Two worlds with equal
// digests followed identical trajectories up to now.
func (w *World) Digest() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(w.ticks)
	put(uint64(w.drowned)) //#nosec G115 -- hash computation
	for _, g := range w.Gears() {
		put(uint64(g.ID))
		put(uint64(g.Position.X.Raw())) //#nosec G115 -- hash computation
		put(uint64(g.Position.Y.Raw())) //#nosec G115 -- hash computation
		put(uint64(g.Velocity.X.Raw())) //#nosec G115 -- hash computation
		put(uint64(g.Velocity.Y.Raw())) //#nosec G115 -- hash computation
		if g.Resting {
			put(1)
		} else {
			put(0)
		}
	}
	return h.Sum64()
}
