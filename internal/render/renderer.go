// Package render draws terrain textures into viewports.
//
// The world only knows the Renderer interface. ScreenRenderer is the
// implementation shipped here: it samples a viewport of the texture into a
// fixed-size character screen, which callers print as text or ANSI.
package render

import (
	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/mapgen"
)

// Renderer receives a texture once per committed terrain and draws
// viewports of it. Neither call reports failure.
type Renderer interface {
	Init(tex *mapgen.Texture)
	Draw(viewport core.Rect)
}

// Background is the clear colour used before every draw.
var Background = core.RGBA(0x66, 0x00, 0x33, 0xff)

// LandRune is drawn for opaque land texels.
const LandRune = '█'

// SkyRune is drawn for sky texels. ANSI output paints it with the sky
// colour as background.
const SkyRune = ' '

// ScreenRenderer renders into a core.Screen.
type ScreenRenderer struct {
	screen  *core.Screen
	texture *mapgen.Texture
	draws   int
}

// NewScreenRenderer creates a renderer with a width x height cell screen.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	return &ScreenRenderer{screen: core.NewScreen(width, height)}
}

// Init replaces the texture that subsequent draws sample.
func (r *ScreenRenderer) Init(tex *mapgen.Texture) {
	r.texture = tex
}

// Draw clears the screen and scales the viewport onto it with nearest
// sampling. Without a texture, or for an empty viewport, the screen is only
// cleared.
func (r *ScreenRenderer) Draw(viewport core.Rect) {
	r.draws++
	r.screen.ClearTo(Background)
	if r.texture == nil || viewport.Empty() {
		return
	}

	sw, sh := r.screen.Width(), r.screen.Height()
	for sy := 0; sy < sh; sy++ {
		wy := viewport.Y + sy*viewport.H/sh
		for sx := 0; sx < sw; sx++ {
			wx := viewport.X + sx*viewport.W/sw
			c := r.texture.At(wx, wy)
			switch {
			case c.Alpha() == 0:
				continue
			case c == r.texture.Sky:
				r.screen.SetCell(sx, sy, core.Cell{Rune: SkyRune, Color: c})
			default:
				r.screen.SetCell(sx, sy, core.Cell{Rune: LandRune, Color: c})
			}
		}
	}
}

// Screen returns the buffer the last Draw wrote.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Draws returns how many times Draw ran.
func (r *ScreenRenderer) Draws() int {
	return r.draws
}
