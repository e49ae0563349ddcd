// Package tint computes declarative paint descriptions to composite over a
// rectangular render target, optionally varying over time. Factories never
// touch pixels; hosts rasterize the returned Paint however they see fit.
package tint

// A Factory produces the tint for a draw pass.
type Factory interface {
	// CreateTint returns the Paint for the current frame of a width x height
	// target. Called once per draw pass on the thread that owns the target.
	CreateTint(width, height int) Paint
}

// An Animator is a Factory whose tint changes over time. All animated
// factories in this package satisfy it by embedding *Animated.
type Animator interface {
	Factory

	// Timeline exposes the factory's animation timeline.
	Timeline() *Animated
}

// BlendMode selects the rule for compositing a tint over its target.
type BlendMode int

const (
	// BlendUnset lets the owning factory fill in its default mode.
	BlendUnset BlendMode = iota
	// BlendNone replaces the target outright.
	BlendNone
	// BlendSourceOver composites the tint over the target by its alpha.
	BlendSourceOver
	// BlendSourceAtop composites the tint only where the target is opaque.
	BlendSourceAtop
)

// TileMode controls how a gradient extends beyond its axis.
type TileMode int

const (
	// TileClamp extends the edge colors beyond the axis.
	TileClamp TileMode = iota
	// TileRepeat repeats the gradient along the axis.
	TileRepeat
	// TileMirror repeats the gradient, mirroring every other lap.
	TileMirror
)

// GradientKind is the topology of a gradient shader.
type GradientKind int

const (
	// GradientLinear distributes stops along a line segment.
	GradientLinear GradientKind = iota
	// GradientRadial distributes stops outward from a center point.
	GradientRadial
	// GradientSweep distributes stops around a center point.
	GradientSweep
)

// Paint describes one frame's tint. It is produced fresh on every query and
// never retained or mutated by its factory. Shader nil means a plain color.
type Paint struct {
	Color  RGBA
	Shader *Shader
	Blend  BlendMode
}

// Shader describes a gradient. Positions is either nil, meaning the colors
// are evenly distributed, or one entry per color in ascending order. Linear
// gradients carry their axis endpoints; radial and sweep gradients carry a
// center (and, for radial, a radius).
type Shader struct {
	Kind      GradientKind
	Colors    []RGBA
	Positions []float64
	Tile      TileMode

	StartX, StartY float64
	EndX, EndY     float64

	CenterX, CenterY float64
	Radius           float64
}
