package tint

import "fmt"

// GradientConfig configures a Gradient factory.
type GradientConfig struct {
	// Kind of gradient. GradientLinear by default.
	Kind GradientKind
	// Colors of the gradient, at least two.
	Colors []RGBA
	// Positions of the colors in [0,1], one per color, ascending. Nil
	// distributes the colors evenly.
	Positions []float64
	// Tile mode, used by linear and radial gradients.
	Tile TileMode
	// Angle in degrees, used by linear gradients only.
	Angle float64
	// Blend rule for the produced Paint. BlendSourceAtop when unset.
	Blend BlendMode
}

// A Gradient is a Factory producing a static linear, radial or sweep
// gradient fitted to the target.
type Gradient struct {
	kind      GradientKind
	colors    []RGBA
	positions []float64
	tile      TileMode
	angle     float64
	blend     BlendMode
}

// NewGradient creates a gradient factory from the config.
func NewGradient(config GradientConfig) (*Gradient, error) {
	if len(config.Colors) < 2 {
		return nil, fmt.Errorf("tint: gradient needs at least 2 colors, got %d", len(config.Colors))
	}
	if config.Positions != nil && len(config.Positions) != len(config.Colors) {
		return nil, fmt.Errorf("tint: gradient has %d colors but %d positions",
			len(config.Colors), len(config.Positions))
	}
	g := new(Gradient)
	g.kind = config.Kind
	g.colors = append([]RGBA(nil), config.Colors...)
	if config.Positions != nil {
		g.positions = append([]float64(nil), config.Positions...)
	}
	g.tile = config.Tile
	g.angle = config.Angle
	g.blend = config.Blend
	if g.blend == BlendUnset {
		g.blend = BlendSourceAtop
	}
	return g, nil
}

// CreateTint builds the gradient description for the target size. Radial
// gradients are centered with radius max(width, height)/2; sweep gradients
// are centered; linear gradients follow the fitted axis at the configured
// angle.
func (g *Gradient) CreateTint(width, height int) Paint {
	shader := &Shader{
		Kind:      g.kind,
		Colors:    g.colors,
		Positions: g.positions,
		Tile:      g.tile,
	}
	halfWidth := float64(width) / 2
	halfHeight := float64(height) / 2
	switch g.kind {
	case GradientRadial:
		shader.CenterX = halfWidth
		shader.CenterY = halfHeight
		shader.Radius = max(halfWidth, halfHeight)
	case GradientSweep:
		shader.CenterX = halfWidth
		shader.CenterY = halfHeight
	default:
		bounds := NewGradientBounds(RectOf(width, height), g.angle)
		shader.StartX = bounds.StartX
		shader.StartY = bounds.StartY
		shader.EndX = bounds.EndX
		shader.EndY = bounds.EndY
	}
	return Paint{Shader: shader, Blend: g.blend}
}
