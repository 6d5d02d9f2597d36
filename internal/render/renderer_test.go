package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/mapgen"
)

func checkerTexture(w, h int, c core.Color) *mapgen.Texture {
	tex := &mapgen.Texture{Size: core.Sz(w, h), Pix: make([]core.Color, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				tex.Pix[y*w+x] = c
			}
		}
	}
	return tex
}

func TestDrawWithoutTexture(t *testing.T) {
	r := NewScreenRenderer(8, 4)
	r.Draw(core.NewRect(0, 0, 100, 100))

	if r.Draws() != 1 {
		t.Errorf("Draws() = %d, expected 1", r.Draws())
	}
	if r.Screen().Background() != Background {
		t.Error("screen should be cleared to the background colour")
	}
	if strings.ContainsRune(r.Screen().String(), LandRune) {
		t.Error("nothing should be drawn without a texture")
	}
}

func TestDrawSamplesViewport(t *testing.T) {
	red := core.RGBA(0xff, 0, 0, 0xff)
	r := NewScreenRenderer(4, 4)
	r.Init(checkerTexture(8, 8, red))

	// 1:1 viewport: screen mirrors the checkerboard.
	r.Draw(core.NewRect(0, 0, 4, 4))
	if r.Screen().GetCell(0, 0).Color != red || r.Screen().Get(1, 0) != ' ' {
		t.Error("1:1 viewport should copy texels")
	}

	// 2:1 viewport: every sample lands on an even coordinate.
	r.Draw(core.NewRect(0, 0, 8, 8))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if r.Screen().Get(x, y) != LandRune {
				t.Fatalf("cell (%d, %d) should be land when sampling even texels", x, y)
			}
		}
	}

	// Viewport entirely outside the texture.
	r.Draw(core.NewRect(100, 100, 4, 4))
	if strings.ContainsRune(r.Screen().String(), LandRune) {
		t.Error("viewport outside the texture should draw nothing")
	}
}

func TestDrawPaintsSky(t *testing.T) {
	land := core.RGBA(0xff, 0, 0, 0xff)
	sky := core.RGBA(0x10, 0x20, 0x40, 0xff)
	tex := checkerTexture(4, 4, land)
	tex.Sky = sky
	for i, c := range tex.Pix {
		if c == core.Transparent {
			tex.Pix[i] = sky
		}
	}

	r := NewScreenRenderer(4, 4)
	r.Init(tex)
	r.Draw(core.NewRect(0, 0, 4, 4))

	if c := r.Screen().GetCell(1, 0); c.Rune != SkyRune || c.Color != sky {
		t.Errorf("sky texel drawn as %+v", c)
	}
	if c := r.Screen().GetCell(0, 0); c.Rune != LandRune || c.Color != land {
		t.Errorf("land texel drawn as %+v", c)
	}
	if got := strings.Count(r.Screen().String(), string(LandRune)); got != 8 {
		t.Errorf("plain output shows %d land cells, expected 8", got)
	}

	lines := strings.Split(RenderANSI(r.Screen()), "\n")
	if len(lines) != 4 || strings.Count(lines[0], string(LandRune)) != 2 {
		t.Errorf("ANSI output lost cells:\n%s", strings.Join(lines, "\n"))
	}
}

func TestDrawEmptyViewport(t *testing.T) {
	r := NewScreenRenderer(4, 4)
	r.Init(checkerTexture(4, 4, core.RGBA(1, 1, 1, 0xff)))
	r.Draw(core.NewRect(0, 0, 0, 10))

	if strings.ContainsRune(r.Screen().String(), LandRune) {
		t.Error("empty viewport should only clear")
	}
}

func TestRenderANSIKeepsText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.ClearTo(Background)
	s.SetCell(1, 0, core.Cell{Rune: LandRune, Color: core.RGBA(0, 0xff, 0, 0xff)})

	out := RenderANSI(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.ContainsRune(lines[0], LandRune) {
		t.Error("styled output should contain the land rune")
	}
}
