package tint

import "fmt"

// ShimmerConfig configures a Shimmer factory.
type ShimmerConfig struct {
	// Size of the shimmer band as a fraction of the animation distance, in
	// (0,1].
	Size float64
	// Color of the band.
	Color RGBA
	// FadeRange is the fraction of each band half that fades to transparent,
	// in [0,1]. 0 keeps the band fully solid; 1 fades from the band's center
	// to both edges.
	FadeRange float64
	// Angle of the sweep direction in degrees.
	Angle float64
	// Tile mode of the underlying gradient.
	Tile TileMode
}

// A Shimmer is an animated Factory that sweeps a bright band across its
// target, entering fully off one edge and leaving fully off the other.
type Shimmer struct {
	*Animated

	angle             float64
	size              float64
	animationDistance float64
	fadeDistance      float64
	color             RGBA
	tile              TileMode
}

// NewShimmer creates a shimmer factory from the configs.
func NewShimmer(animation AnimationConfig, config ShimmerConfig) (*Shimmer, error) {
	if config.Size <= 0 || config.Size > 1 {
		return nil, fmt.Errorf("tint: shimmer size must be in (0,1], got %v", config.Size)
	}
	if config.FadeRange < 0 || config.FadeRange > 1 {
		return nil, fmt.Errorf("tint: shimmer fade range must be in [0,1], got %v", config.FadeRange)
	}
	s := new(Shimmer)
	s.angle = config.Angle
	s.size = config.Size
	s.animationDistance = 1 + config.Size
	s.fadeDistance = config.FadeRange * (config.Size / 2)
	s.color = config.Color
	s.tile = config.Tile
	animated, err := newAnimated(animation, s.createFrame)
	if err != nil {
		return nil, err
	}
	s.Animated = animated
	return s, nil
}

// createFrame positions the band along the fitted axis: a six-stop gradient
// running transparent, fade-in, solid core, fade-out, transparent. The band
// trailing edge sits at progress * (1 + size), so progress 0 places it
// entirely before the target and progress 1 entirely past it.
func (s *Shimmer) createFrame(width, height int, progress float64, completedLaps int) Paint {
	bounds := NewGradientBounds(RectOf(width, height), s.angle)
	shimmerEnd := progress * s.animationDistance
	shimmerStart := shimmerEnd - s.size
	solidStart := shimmerStart + s.fadeDistance
	solidEnd := shimmerEnd - s.fadeDistance
	return Paint{Shader: &Shader{
		Kind:   GradientLinear,
		Colors: []RGBA{Transparent, Transparent, s.color, s.color, Transparent, Transparent},
		Positions: []float64{
			-s.size,
			shimmerStart,
			solidStart,
			solidEnd,
			shimmerEnd,
			s.animationDistance,
		},
		Tile:   s.tile,
		StartX: bounds.StartX,
		StartY: bounds.StartY,
		EndX:   bounds.EndX,
		EndY:   bounds.EndY,
	}}
}
