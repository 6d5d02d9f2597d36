package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/landsim/internal/storage"
)

var (
	flagRunsLimit    int
	flagRunsTemplate string
	flagRunsStats    bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Lists the most recent runs from the journal, optionally for one template.

Examples:
  landsim runs
  landsim runs --template ridge --limit 5
  landsim runs --stats`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to show")
	runsCmd.Flags().StringVar(&flagRunsTemplate, "template", "", "Only show runs of this template")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-template totals instead")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	if flagRunsStats {
		return printStats(store)
	}

	var runs []storage.Run
	if flagRunsTemplate != "" {
		runs, err = store.RunsByTemplate(flagRunsTemplate, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'landsim run <template>' to record the first one.")
		return nil
	}

	fmt.Printf("  %-8s  %-12s  %-12s  %6s  %5s  %-33s  %s\n", "ID", "Template", "Seed", "Steps", "Gears", "Digest", "When")
	fmt.Printf("  %-8s  %-12s  %-12s  %6s  %5s  %-33s  %s\n", "--", "--------", "----", "-----", "-----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-12s  %-12q  %6d  %5d  %016x/%016x  %s\n",
			shortID(r.ID), r.TemplateID, r.Seed, r.Steps, r.Gears,
			r.TerrainDigest, r.PhysicsDigest, humanize.Time(r.CreatedAt))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %5s  %10s  %s\n", "Template", "Runs", "Steps", "Last run")
	fmt.Printf("  %-12s  %5s  %10s  %s\n", "--------", "----", "-----", "--------")
	for _, s := range stats {
		fmt.Printf("  %-12s  %5d  %10s  %s\n",
			s.TemplateID, s.Runs, humanize.Comma(s.TotalSteps), humanize.Time(s.LastRun))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
