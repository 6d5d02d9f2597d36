// Package mapgen turns terrain bitmaps into RGBA textures using a theme.
package mapgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/landsim/internal/core"
)

// ThemeFile is the file LoadTheme reads inside a theme directory.
const ThemeFile = "theme.yaml"

// ErrInvalidTheme is returned for a theme file that parses but cannot be
// used.
var ErrInvalidTheme = errors.New("mapgen: invalid theme")

// Theme is a loaded visual theme.
type Theme struct {
	Name        string
	Sky         core.Color
	Border      core.Color
	BorderWidth int
	LandTile    [][]core.Color // Rows of the repeating land texture
}

// yamlTheme is the on-disk layout of theme.yaml.
type yamlTheme struct {
	Name        string     `yaml:"name"`
	Sky         string     `yaml:"sky"`
	Border      string     `yaml:"border"`
	BorderWidth int        `yaml:"border_width"`
	Land        [][]string `yaml:"land"`
}

// LoadTheme reads dir/theme.yaml. The read blocks and has no timeout.
func LoadTheme(dir string) (*Theme, error) {
	path := filepath.Join(dir, ThemeFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapgen: cannot read theme %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes and validates a theme document.
func ParseTheme(data []byte) (*Theme, error) {
	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("mapgen: cannot parse theme: %w", err)
	}

	th := &Theme{
		Name:        yt.Name,
		BorderWidth: yt.BorderWidth,
	}

	var ok bool
	if yt.Sky == "" {
		th.Sky = core.Transparent
	} else if th.Sky, ok = core.ParseHex(yt.Sky); !ok {
		return nil, fmt.Errorf("%w: bad sky colour %q", ErrInvalidTheme, yt.Sky)
	}
	if th.Border, ok = core.ParseHex(yt.Border); !ok {
		return nil, fmt.Errorf("%w: bad border colour %q", ErrInvalidTheme, yt.Border)
	}
	if th.BorderWidth < 0 {
		return nil, fmt.Errorf("%w: negative border width %d", ErrInvalidTheme, th.BorderWidth)
	}

	if len(yt.Land) == 0 {
		return nil, fmt.Errorf("%w: empty land tile", ErrInvalidTheme)
	}
	width := len(yt.Land[0])
	for y, row := range yt.Land {
		if len(row) == 0 || len(row) != width {
			return nil, fmt.Errorf("%w: land tile row %d has %d colours, expected %d", ErrInvalidTheme, y, len(row), width)
		}
		colors := make([]core.Color, len(row))
		for x, s := range row {
			c, ok := core.ParseHex(s)
			if !ok {
				return nil, fmt.Errorf("%w: bad land colour %q at (%d,%d)", ErrInvalidTheme, s, x, y)
			}
			colors[x] = c
		}
		th.LandTile = append(th.LandTile, colors)
	}
	return th, nil
}

// landAt samples the repeating land tile.
func (t *Theme) landAt(x, y int) core.Color {
	row := t.LandTile[y%len(t.LandTile)]
	return row[x%len(row)]
}
