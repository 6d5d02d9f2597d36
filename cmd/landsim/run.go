package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/landsim/internal/config"
	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/fpnum"
	"github.com/vovakirdan/landsim/internal/render"
	"github.com/vovakirdan/landsim/internal/storage"
	"github.com/vovakirdan/landsim/internal/world"
)

var (
	flagSteps    int
	flagGears    int
	flagPlain    bool
	flagNoRecord bool
)

var runCmd = &cobra.Command{
	Use:   "run <template>",
	Short: "Generate a map, simulate it and render the result",
	Long: `Initializes the world from a template, spawns gears along the top edge,
steps the physics and prints the whole map scaled to the terminal.
The run is recorded in the journal unless --no-record is given.

Examples:
  landsim run plateau
  landsim --seed abc run ridge --steps 2000 --gears 10
  landsim run archipelago --plain > map.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Physics steps to run")
	runCmd.Flags().IntVar(&flagGears, "gears", 4, "Gears to drop onto the map")
	runCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colours")
	runCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run in the journal")
}

func runRun(cmd *cobra.Command, args []string) error {
	templateID := args[0]
	if flagSteps < 0 || flagGears < 0 {
		return fmt.Errorf("--steps and --gears must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	tpl, err := resolveTemplate(templateID, logger)
	if err != nil {
		return err
	}

	cols, rows := mapSize(cfg.Renderer.Width, cfg.Renderer.Height)
	screen := render.NewScreenRenderer(cols, rows)
	w := newWorld(cfg, logger, world.WithRenderer(screen))

	start := time.Now()
	if err := w.Init(tpl); err != nil {
		return err
	}
	spawnGears(w, tpl.Size, flagGears)
	for i := 0; i < flagSteps; i++ {
		w.Step()
	}
	elapsed := time.Since(start)

	w.Render(0, 0, float32(tpl.Size.W), float32(tpl.Size.H))
	if flagPlain {
		fmt.Println(screen.Screen().String())
	} else {
		fmt.Println(render.RenderANSI(screen.Screen()))
	}

	digest, _ := w.Digest()
	resting := 0
	for _, g := range w.Gears() {
		if g.Resting {
			resting++
		}
	}
	fmt.Printf("%s %dx%d, %d steps, %d/%d gears resting, digest %s\n",
		templateID, tpl.Size.W, tpl.Size.H, w.Tick(), resting, flagGears, digest)

	if flagNoRecord {
		return nil
	}
	return recordRun(cfg, logger, storage.Run{
		Seed:          flagSeed,
		TemplateID:    templateID,
		Width:         tpl.Size.W,
		Height:        tpl.Size.H,
		Steps:         flagSteps,
		Gears:         flagGears,
		TerrainDigest: digest.Terrain,
		PhysicsDigest: digest.Physics,
		Duration:      elapsed,
	})
}

// spawnGears drops n gears evenly along the top edge, alternating a small
// sideways push.
func spawnGears(w *world.World, size core.Size, n int) {
	for i := 0; i < n; i++ {
		x := (i + 1) * size.W / (n + 1)
		vx := fpnum.FromRatio(1, 2)
		if i%2 == 1 {
			vx = -vx
		}
		w.SpawnGear(core.Pt(x, 0), fpnum.Point{X: vx})
	}
}

// recordRun saves r and warns when an earlier run with the same inputs
// ended differently. A journal that cannot be opened is not fatal.
func recordRun(cfg config.EngineConfig, logger *log.Logger, r storage.Run) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return nil
	}
	defer store.Close()

	previous, err := store.MatchingRuns(r.Seed, r.TemplateID, r.Steps)
	if err != nil {
		return err
	}
	for _, p := range previous {
		if p.Gears == r.Gears && (p.TerrainDigest != r.TerrainDigest || p.PhysicsDigest != r.PhysicsDigest) {
			logger.Warn("run differs from an earlier run with the same inputs", "previous", p.ID)
			break
		}
	}

	id, err := store.SaveRun(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "recorded run %s\n", id)
	return nil
}
