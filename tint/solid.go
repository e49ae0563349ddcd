package tint

// A Solid is a Factory that tints its target with a single fixed color.
type Solid struct {
	paint Paint
}

// NewSolid creates a solid-color factory. BlendUnset falls back to
// BlendSourceAtop.
func NewSolid(color RGBA, blend BlendMode) *Solid {
	if blend == BlendUnset {
		blend = BlendSourceAtop
	}
	s := new(Solid)
	s.paint = Paint{Color: color, Blend: blend}
	return s
}

// CreateTint returns the configured color regardless of the target size.
func (s *Solid) CreateTint(width, height int) Paint {
	return s.paint
}
