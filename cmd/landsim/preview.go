package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/landsim/internal/landgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a down-sampled preview map",
	Long: `Generates the fixed 4096x2048 preview terrain from --seed and prints it
scaled to the terminal.

Examples:
  landsim preview
  landsim --seed hello preview`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := newWorld(cfg, newLogger(cfg))

	w.GeneratePreview()
	p := w.Preview()
	defer w.DisposePreview()

	cols, rows := mapSize(80, 24)
	fmt.Println(asciiMap(p, cols, rows))

	land := p.Count(255)
	fmt.Printf("%dx%d, %s land cells (%.1f%%), digest %016x\n",
		p.Width(), p.Height(),
		humanize.Comma(int64(land)),
		100*float64(land)/float64(p.Size().Area()),
		p.Digest(),
	)
	return nil
}

// asciiMap scales land to cols x rows characters. A character is land when
// any cell of its block is.
func asciiMap(land *landgen.Land2D[uint8], cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow((cols + 1) * rows)

	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		y0, y1 := r*land.Height()/rows, (r+1)*land.Height()/rows
		for c := 0; c < cols; c++ {
			x0, x1 := c*land.Width()/cols, (c+1)*land.Width()/cols
			if blockHasLand(land, x0, y0, max(x1, x0+1), max(y1, y0+1)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func blockHasLand(land *landgen.Land2D[uint8], x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if land.Get(x, y) != 0 {
				return true
			}
		}
	}
	return false
}
