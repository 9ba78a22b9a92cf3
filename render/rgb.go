package render

import "github.com/gdamore/tcell/v2"

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// Unpack converts a packed 0xRRGGBB value
func Unpack(c uint32) RGB {
	return RGB{uint8(c >> 16), uint8(c >> 8), uint8(c)}
}

// Lerp blends toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	mix := func(a, b uint8) uint8 {
		return clamp(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGB{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B)}
}

// Fade blends c over the background at the given opacity
func (c RGB) Fade(alpha float64) RGB {
	return RgbBackground.Lerp(c, alpha)
}

// Tcell converts to a true-color tcell.Color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts a tcell.Color, treating ColorDefault as the background
func FromTcell(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}
