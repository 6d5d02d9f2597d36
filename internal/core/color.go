package core

import "fmt"

// Color is a packed 0xRRGGBBAA value. It is the texel format of terrain
// textures and the cell colour of screen buffers.
type Color uint32

// Transparent is the zero colour; renderers treat it as "nothing here".
const Transparent Color = 0

// RGBA packs the four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Channels unpacks the colour.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c)
}

// Hex formats the colour as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". A missing alpha means opaque.
func ParseHex(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b, a uint8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Transparent, false
		}
		a = 0xff
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Transparent, false
		}
	default:
		return Transparent, false
	}
	return RGBA(r, g, b, a), true
}
