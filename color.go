package rast

import "image/color"

// RGBA represents a non-premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Red         = RGBA{R: 1, A: 1}
	Green       = RGBA{G: 1, A: 1}
	Blue        = RGBA{B: 1, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithOpacity returns the color with its alpha multiplied by opacity.
func (c RGBA) WithOpacity(opacity float64) RGBA {
	c.A *= clamp(opacity, 0, 1)
	return c
}

// Premul8 returns the color as premultiplied 8-bit channels.
func (c RGBA) Premul8() (r, g, b, a byte) {
	a8 := clamp(c.A, 0, 1)
	return byte(clamp(c.R, 0, 1)*a8*255 + 0.5),
		byte(clamp(c.G, 0, 1)*a8*255 + 0.5),
		byte(clamp(c.B, 0, 1)*a8*255 + 0.5),
		byte(a8*255 + 0.5)
}

// IsOpaque reports whether the color has full alpha.
func (c RGBA) IsOpaque() bool {
	return c.A >= 1
}

// Color converts to the standard library color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: byte(clamp(c.R, 0, 1)*255 + 0.5),
		G: byte(clamp(c.G, 0, 1)*255 + 0.5),
		B: byte(clamp(c.B, 0, 1)*255 + 0.5),
		A: byte(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// FromColor converts a standard library color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// RGBA() returns premultiplied 16-bit channels.
	af := float64(a) / 65535
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: af,
	}
}
