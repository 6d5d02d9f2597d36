package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/landsim/internal/render"
	"github.com/vovakirdan/landsim/internal/snapshot"
	"github.com/vovakirdan/landsim/internal/world"
)

var (
	flagReplaySteps int
	flagReplayPlain bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Continue a simulation from a terrain snapshot",
	Long: `Loads a snapshot written by export, verifies it, steps the physics
further and renders the result. A snapshot exported after N steps and
replayed for M more ends in the same state as a run of N+M steps.

Examples:
  landsim replay ridge.zst --steps 500
  landsim replay out/plateau.zst --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplaySteps, "steps", 1000, "Physics steps to run after loading")
	replayCmd.Flags().BoolVar(&flagReplayPlain, "plain", false, "Print without colours")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if flagReplaySteps < 0 {
		return fmt.Errorf("--steps must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cols, rows := mapSize(cfg.Renderer.Width, cfg.Renderer.Height)
	screen := render.NewScreenRenderer(cols, rows)
	w := newWorld(cfg, logger, world.WithRenderer(screen))

	h, err := restoreSnapshot(w, args[0])
	if err != nil {
		return err
	}
	for i := 0; i < flagReplaySteps; i++ {
		w.Step()
	}

	w.Render(0, 0, float32(h.Width), float32(h.Height))
	if flagReplayPlain {
		fmt.Println(screen.Screen().String())
	} else {
		fmt.Println(render.RenderANSI(screen.Screen()))
	}

	digest, _ := w.Digest()
	fmt.Printf("%s %dx%d, tick %d -> %d, %d gears, digest %s\n",
		h.TemplateID, h.Width, h.Height, h.Tick, w.Tick(), len(w.Gears()), digest)
	return nil
}

// restoreSnapshot reads and verifies the snapshot at path and installs it
// as w's game state.
func restoreSnapshot(w *world.World, path string) (snapshot.Header, error) {
	snap, err := snapshot.Read(path)
	if err != nil {
		return snapshot.Header{}, err
	}
	land, err := snap.Land()
	if err != nil {
		return snapshot.Header{}, err
	}
	phys, err := snap.Physics()
	if err != nil {
		return snapshot.Header{}, err
	}
	if err := w.Restore(land, phys); err != nil {
		return snapshot.Header{}, err
	}
	return snap.Header, nil
}
