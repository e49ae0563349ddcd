package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/seblit/tintlayout/tint"
)

// A Rasterizer turns Paint descriptions into pixel Frames, compositing the
// tint over a solid background color.
type Rasterizer struct {
	background colorful.Color
}

// NewRasterizer creates a Rasterizer with the given background.
func NewRasterizer(background colorful.Color) *Rasterizer {
	r := new(Rasterizer)
	r.background = background
	return r
}

// Rasterize evaluates the paint at every pixel center of a width x height
// target. Zero-size targets yield an empty frame.
func (r *Rasterizer) Rasterize(paint tint.Paint, width, height int) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := shade(paint, float64(x)+0.5, float64(y)+0.5)
			f.Set(x, y, r.composite(c, paint.Blend))
		}
	}
	return f
}

// composite applies the paint's blend rule against the background. The
// background is opaque, so source-atop and source-over coincide; BlendNone
// discards it.
func (r *Rasterizer) composite(c tint.RGBA, blend tint.BlendMode) colorful.Color {
	if blend == tint.BlendNone {
		return c.Colorful().Clamped()
	}
	return colorful.Color{
		R: c.R*c.A + r.background.R*(1-c.A),
		G: c.G*c.A + r.background.G*(1-c.A),
		B: c.B*c.A + r.background.B*(1-c.A),
	}.Clamped()
}

// shade evaluates the paint color at a point.
func shade(paint tint.Paint, x, y float64) tint.RGBA {
	if paint.Shader == nil {
		return paint.Color
	}
	s := paint.Shader
	var t float64
	switch s.Kind {
	case tint.GradientRadial:
		if s.Radius > 0 {
			t = math.Hypot(x-s.CenterX, y-s.CenterY) / s.Radius
		}
	case tint.GradientSweep:
		// Sweep starts at 3 o'clock and runs clockwise in y-down
		// coordinates.
		t = math.Atan2(y-s.CenterY, x-s.CenterX) / (2 * math.Pi)
		if t < 0 {
			t++
		}
	default:
		dx := s.EndX - s.StartX
		dy := s.EndY - s.StartY
		if lenSq := dx*dx + dy*dy; lenSq > 0 {
			t = ((x-s.StartX)*dx + (y-s.StartY)*dy) / lenSq
		}
	}
	return colorAt(s, tile(t, s.Tile))
}

// tile maps the axis position into the gradient's domain.
func tile(t float64, mode tint.TileMode) float64 {
	switch mode {
	case tint.TileRepeat:
		t -= math.Floor(t)
	case tint.TileMirror:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // TileClamp
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// colorAt interpolates the shader's stops at position t. Positions nil
// means the colors are evenly distributed over [0,1]. Before the first stop
// the first color holds, past the last stop the last one.
func colorAt(s *tint.Shader, t float64) tint.RGBA {
	n := len(s.Colors)
	if n == 0 {
		return tint.Transparent
	}
	if n == 1 {
		return s.Colors[0]
	}
	if t <= stopPosition(s, 0) {
		return s.Colors[0]
	}
	for i := 0; i < n-1; i++ {
		p1 := stopPosition(s, i)
		p2 := stopPosition(s, i+1)
		if t <= p2 {
			if p2 == p1 {
				return s.Colors[i+1]
			}
			return lerpStop(s.Colors[i], s.Colors[i+1], (t-p1)/(p2-p1))
		}
	}
	return s.Colors[n-1]
}

func stopPosition(s *tint.Shader, i int) float64 {
	if s.Positions != nil {
		return s.Positions[i]
	}
	return float64(i) / float64(len(s.Colors)-1)
}

// lerpStop blends two stop colors. The RGB channels go through colorful's
// RGB blending; alpha interpolates linearly alongside.
func lerpStop(from, to tint.RGBA, t float64) tint.RGBA {
	c := from.Colorful().BlendRgb(to.Colorful(), t)
	return tint.RGBA{R: c.R, G: c.G, B: c.B, A: from.A + (to.A-from.A)*t}
}
