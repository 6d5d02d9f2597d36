// landsim generates destructible 2D terrain from outline templates and
// simulates falling gears on it, deterministically from a seed.
//
// Usage:
//
//	landsim templates                 - List available terrain templates
//	landsim preview                   - Print a down-sampled preview map
//	landsim run <template>            - Generate, simulate and render a map
//	landsim export <template> <file>  - Write a compressed terrain snapshot
//	landsim replay <file>             - Continue from a terrain snapshot
//	landsim runs                      - Show recorded runs
//
// Global flags:
//
//	--seed <value>      - Seed bytes for the random stream (default: empty)
//	--config <path>     - Engine config file
//	--db <path>         - Run journal path (default from config)
//	--log-level <level> - debug, info, warn or error
//	--templates <dir>   - Extra directory of YAML templates
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed         string
	flagConfigPath   string
	flagDBPath       string
	flagLogLevel     string
	flagTemplatesDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "landsim",
	Short: "landsim - deterministic destructible terrain simulation",
	Long: `landsim builds terrain from outline templates, drops gears onto it
and steps the physics one fixed time unit at a time. The same seed and
template always give the same terrain and the same trajectories.

Available commands:
  templates - Show all available templates
  preview   - Print a preview map
  run       - Generate, simulate and render a map
  export    - Write a terrain snapshot
  replay    - Continue from a terrain snapshot
  runs      - View recorded runs

Examples:
  landsim templates
  landsim --seed abc preview
  landsim --seed abc run ridge --steps 500 --gears 8
  landsim export plateau plateau.zst
  landsim runs`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed for the random stream (empty = fixed empty seed)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to engine config (default: search ~/.landsim/configs, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagTemplatesDir, "templates", "", "Directory of additional YAML templates")

	// Add subcommands
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
}
