package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/landsim/internal/registry"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List all available terrain templates",
	Long:  `Shows the built-in templates plus any loaded with --templates.`,
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := registerExtraTemplates(newLogger(cfg)); err != nil {
		return err
	}

	list := registry.List()
	if len(list) == 0 {
		fmt.Println("No templates available.")
		return nil
	}

	fmt.Println("Available templates:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxSizeLen := 2, 4 // "ID", "Size" headers
	for _, t := range list {
		maxIDLen = max(maxIDLen, len(t.ID))
		maxSizeLen = max(maxSizeLen, len(t.Size))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxSizeLen, "Size", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxSizeLen, "----", "-----------")
	for _, t := range list {
		desc := t.Description
		if desc == "" {
			desc = t.Name
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, t.ID, maxSizeLen, t.Size, desc)
	}

	fmt.Println()
	fmt.Println("Run 'landsim run <id>' to simulate a template.")
	return nil
}
