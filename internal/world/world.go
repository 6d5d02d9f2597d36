// Package world owns one deterministic simulation: its random stream, an
// optional preview terrain, an optional game state (terrain plus physics)
// and the renderer that shows it.
//
// Everything observable about a world follows from its seed and the order
// of calls made on it. Generation consumes the random stream in call order,
// so GeneratePreview before Init yields different game terrain than Init
// alone. Without SetSeed the stream is seeded from an empty buffer, which
// makes every unseeded world identical.
//
// A World is not safe for concurrent use. Callers that share one must
// serialize access.
package world

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/landsim/internal/config"
	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/fpnum"
	"github.com/vovakirdan/landsim/internal/landgen"
	"github.com/vovakirdan/landsim/internal/mapgen"
	"github.com/vovakirdan/landsim/internal/physics"
	"github.com/vovakirdan/landsim/internal/prng"
	"github.com/vovakirdan/landsim/internal/render"
)

// gameState is created and replaced as a unit.
type gameState struct {
	terrain *landgen.Land2D[uint32]
	physics *physics.World
}

// World is the orchestration root.
type World struct {
	rng      *prng.LaggedFibonacci
	preview  *landgen.Land2D[uint8]
	state    *gameState
	renderer render.Renderer
	cfg      config.EngineConfig
	logger   *log.Logger
	tick     uint64
}

// Option configures a World at construction.
type Option func(*World)

// WithConfig replaces the default engine config.
func WithConfig(cfg config.EngineConfig) Option {
	return func(w *World) { w.cfg = cfg }
}

// WithRenderer replaces the default screen renderer.
func WithRenderer(r render.Renderer) Option {
	return func(w *World) { w.renderer = r }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// New creates a world with an empty-seeded stream, no preview and no game
// state. Unless WithRenderer is given, it renders into a screen sized by
// the config.
func New(opts ...Option) *World {
	w := &World{
		rng: prng.New(nil),
		cfg: config.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.renderer == nil {
		w.renderer = render.NewScreenRenderer(w.cfg.Renderer.Width, w.cfg.Renderer.Height)
	}
	if w.logger == nil {
		w.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "world",
			Level:           w.cfg.LogLevel(),
		})
	}
	return w
}

// SetSeed replaces the random stream with one built from seed. The
// previous stream state is discarded entirely.
func (w *World) SetSeed(seed []byte) {
	w.rng = prng.New(seed)
	w.logger.Debug("seeded", "bytes", len(seed))
}

// GeneratePreview replaces the preview terrain with a fresh one built from
// PreviewTemplate, advancing the stream. The template is fixed, so a
// generation error means the template itself is broken and panics.
func (w *World) GeneratePreview() {
	gen := landgen.NewTemplatedGenerator(PreviewTemplate())
	land, err := landgen.GenerateLand(gen, PreviewParams(), w.rng)
	if err != nil {
		panic(fmt.Sprintf("world: preview template: %v", err))
	}
	w.preview = land
	w.logger.Debug("preview generated", "size", fmt.Sprintf("%dx%d", land.Width(), land.Height()))
}

// Preview returns the current preview terrain, or nil. The bitmap belongs
// to the world and must not be modified.
func (w *World) Preview() *landgen.Land2D[uint8] {
	return w.preview
}

// DisposePreview drops the preview terrain. It is safe to call at any time.
func (w *World) DisposePreview() {
	w.preview = nil
}

// Init generates game terrain from t, builds a physics world of the same
// size and hands a textured copy of the terrain to the renderer.
//
// On error nothing is committed: the previous game state, tick counter and
// renderer texture stay as they were. Random numbers consumed before the
// failure are not given back, so a retry sees a different stream.
func (w *World) Init(t landgen.OutlineTemplate) error {
	start := time.Now()

	phys := physics.New(t.Size)

	gen := landgen.NewTemplatedGenerator(t)
	terrain, err := landgen.GenerateLand(gen, GameParams(), w.rng)
	if err != nil {
		w.logger.Error("init failed", "stage", "generate", "err", err)
		return fmt.Errorf("world: generate terrain: %w", err)
	}

	theme, err := mapgen.LoadTheme(w.cfg.ThemeDir)
	if err != nil {
		w.logger.Error("init failed", "stage", "theme", "dir", w.cfg.ThemeDir, "err", err)
		return fmt.Errorf("world: load theme: %w", err)
	}

	w.renderer.Init(mapgen.MakeTexture32(terrain, theme))
	w.state = &gameState{terrain: terrain, physics: phys}
	w.tick = 0

	w.logger.Info("world initialized",
		"size", fmt.Sprintf("%dx%d", t.Size.W, t.Size.H),
		"theme", theme.Name,
		"took", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// Restore installs previously exported game state. terrain and phys must
// have the same size. The random stream is left alone and the tick
// counter continues from phys. On error nothing is committed.
func (w *World) Restore(terrain *landgen.Land2D[uint32], phys *physics.World) error {
	if terrain.Size() != phys.Size() {
		return fmt.Errorf("world: terrain %dx%d does not match physics %dx%d",
			terrain.Width(), terrain.Height(), phys.Size().W, phys.Size().H)
	}

	theme, err := mapgen.LoadTheme(w.cfg.ThemeDir)
	if err != nil {
		w.logger.Error("restore failed", "stage", "theme", "dir", w.cfg.ThemeDir, "err", err)
		return fmt.Errorf("world: load theme: %w", err)
	}

	w.renderer.Init(mapgen.MakeTexture32(terrain, theme))
	w.state = &gameState{terrain: terrain, physics: phys}
	w.tick = phys.Ticks()

	w.logger.Info("world restored",
		"size", fmt.Sprintf("%dx%d", terrain.Width(), terrain.Height()),
		"tick", w.tick,
		"gears", len(phys.Gears()),
	)
	return nil
}

// Step advances physics by one time unit against the committed terrain.
// Without game state it does nothing.
func (w *World) Step() {
	if w.state == nil {
		return
	}
	w.state.physics.Step(fpnum.One, w.state.terrain)
	w.tick++
}

// Render draws the viewport spanning (x, y) to (x+width, y+height). It
// always reaches the renderer, with or without game state.
func (w *World) Render(x, y, width, height float32) {
	w.renderer.Draw(viewport(x, y, width, height))
}

// viewport truncates both corners and normalizes. Like every core.Rect the
// result is half-open: the far corner (x+width, y+height) is excluded, so
// Render(0, 0, 100, 100) covers exactly 100x100 cells.
func viewport(x, y, width, height float32) core.Rect {
	return core.RectFromPoints(
		core.Pt(int(x), int(y)),
		core.Pt(int(x+width), int(y+height)),
	)
}

// SpawnGear drops a gear into the physics world. It reports false when
// there is no game state.
func (w *World) SpawnGear(at core.Point, velocity fpnum.Point) (physics.GearID, bool) {
	if w.state == nil {
		return 0, false
	}
	return w.state.physics.AddGear(at, velocity), true
}

// Gears returns copies of the live gears, or nil without game state.
func (w *World) Gears() []physics.Gear {
	if w.state == nil {
		return nil
	}
	return w.state.physics.Gears()
}

// Tick counts steps run since the last successful Init, or since the
// snapshot tick after Restore.
func (w *World) Tick() uint64 {
	return w.tick
}

// HasGameState reports whether Init has succeeded.
func (w *World) HasGameState() bool {
	return w.state != nil
}

// Terrain returns the committed game terrain, or nil. The bitmap belongs
// to the world and must not be modified.
func (w *World) Terrain() *landgen.Land2D[uint32] {
	if w.state == nil {
		return nil
	}
	return w.state.terrain
}

// Physics returns the committed physics world, or nil. Callers may read it
// but must step it only through Step.
func (w *World) Physics() *physics.World {
	if w.state == nil {
		return nil
	}
	return w.state.physics
}

// Renderer returns the renderer the world draws with.
func (w *World) Renderer() render.Renderer {
	return w.renderer
}

// Digest identifies the game state: terrain contents and the physics
// trajectory so far.
type Digest struct {
	Terrain uint64
	Physics uint64
}

// String formats both halves as hex.
func (d Digest) String() string {
	return fmt.Sprintf("%016x/%016x", d.Terrain, d.Physics)
}

// Digest returns the current state digest. ok is false without game state.
func (w *World) Digest() (d Digest, ok bool) {
	if w.state == nil {
		return Digest{}, false
	}
	return Digest{
		Terrain: w.state.terrain.Digest(),
		Physics: w.state.physics.Digest(),
	}, true
}
