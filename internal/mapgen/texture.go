package mapgen

import (
	"hash/fnv"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/landgen"
)

// Texture is a row-major RGBA image the size of the terrain it was built
// from. Empty terrain cells hold Sky.
type Texture struct {
	Size core.Size
	Sky  core.Color
	Pix  []core.Color
}

// At returns the texel at (x, y), or Transparent outside the texture.
func (t *Texture) At(x, y int) core.Color {
	if t == nil || !t.Size.Contains(core.Pt(x, y)) {
		return core.Transparent
	}
	return t.Pix[y*t.Size.W+x]
}

// Digest hashes every texel.
func (t *Texture) Digest() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, c := range t.Pix {
		buf[0] = byte(c >> 24)
		buf[1] = byte(c >> 16)
		buf[2] = byte(c >> 8)
		buf[3] = byte(c)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// MakeTexture32 paints land cells with the theme's land tile and the top
// BorderWidth cells of every land column run with the border colour. Empty
// cells get the sky colour, which is transparent for themes without one.
func MakeTexture32(land *landgen.Land2D[uint32], theme *Theme) *Texture {
	size := land.Size()
	tex := &Texture{Size: size, Sky: theme.Sky, Pix: make([]core.Color, size.Area())}

	// depth[x] counts consecutive land cells above the current row.
	depth := make([]int, size.W)
	for y := 0; y < size.H; y++ {
		row := land.Row(y)
		out := tex.Pix[y*size.W : (y+1)*size.W]
		for x, code := range row {
			if code == 0 {
				out[x] = theme.Sky
				depth[x] = 0
				continue
			}
			if depth[x] < theme.BorderWidth {
				out[x] = theme.Border
			} else {
				out[x] = theme.landAt(x, y)
			}
			depth[x]++
		}
	}
	return tex
}
