package tint

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with non-premultiplied channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// Hex parses a "#rrggbb" or "#aarrggbb" color string.
func Hex(s string) (RGBA, error) {
	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, err
		}
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, nil
	case 9:
		var a uint8
		if _, err := fmt.Sscanf(s[:3], "#%02x", &a); err != nil {
			return RGBA{}, fmt.Errorf("tint: invalid color %q", s)
		}
		c, err := colorful.Hex("#" + s[3:])
		if err != nil {
			return RGBA{}, err
		}
		return RGBA{R: c.R, G: c.G, B: c.B, A: float64(a) / 255}, nil
	}
	return RGBA{}, fmt.Errorf("tint: invalid color %q", s)
}

// MustHex is Hex for compile-time constants; it panics on malformed input.
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Colorful converts the RGB channels to a colorful.Color, dropping alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// lerpRGBA interpolates linearly per channel, alpha included.
func lerpRGBA(from, to RGBA, t float64) RGBA {
	return RGBA{
		R: from.R + (to.R-from.R)*t,
		G: from.G + (to.G-from.G)*t,
		B: from.B + (to.B-from.B)*t,
		A: from.A + (to.A-from.A)*t,
	}
}
