package tint

import (
	"fmt"
	"math"
)

// ColorSwipeConfig configures a ColorSwipe factory.
type ColorSwipeConfig struct {
	// Colors to swipe through, at least two. Looping animations wrap from
	// the last color back to the first.
	Colors []RGBA
	// Angle of the swipe direction in degrees.
	Angle float64
	// BlendRange is the width of the soft edge between two colors as a
	// fraction of the target, in [0,1]. 0 gives a hard line, 1 a smooth
	// transition covering the full size.
	BlendRange float64
	// Tile mode of the underlying gradient.
	Tile TileMode
	// SwipeInterpolator eases the sweep within one color segment. Linear
	// when nil.
	SwipeInterpolator Interpolator
}

// A ColorSwipe is an animated Factory that transitions between its colors
// in a swiping motion: the next color sweeps over the current one along the
// configured angle.
type ColorSwipe struct {
	*Animated

	colors            []RGBA
	tile              TileMode
	angle             float64
	blendRange        float64
	animationDistance float64
	progressPerColor  float64
	swipeInterpolator Interpolator
}

// NewColorSwipe creates a color swipe factory from the configs.
func NewColorSwipe(animation AnimationConfig, config ColorSwipeConfig) (*ColorSwipe, error) {
	if len(config.Colors) < 2 {
		return nil, fmt.Errorf("tint: color swipe needs at least 2 colors, got %d", len(config.Colors))
	}
	if config.BlendRange < 0 || config.BlendRange > 1 {
		return nil, fmt.Errorf("tint: blend range must be in [0,1], got %v", config.BlendRange)
	}
	s := new(ColorSwipe)
	s.colors = append([]RGBA(nil), config.Colors...)
	s.tile = config.Tile
	s.angle = config.Angle
	s.blendRange = config.BlendRange
	s.animationDistance = 1 + config.BlendRange
	s.progressPerColor = 1 / float64(len(config.Colors)-1)
	s.swipeInterpolator = config.SwipeInterpolator
	animated, err := newAnimated(animation, s.createFrame)
	if err != nil {
		return nil, err
	}
	s.Animated = animated
	return s, nil
}

// createFrame builds a four-stop linear gradient: the next color occupies
// the swept-over span, the current color the rest, with a blendRange-wide
// soft edge in between.
func (s *ColorSwipe) createFrame(width, height int, progress float64, completedLaps int) Paint {
	current := colorIndex(progress, len(s.colors))
	next := nextColorIndex(current, len(s.colors))
	bounds := NewGradientBounds(RectOf(width, height), s.angle)
	colorProgress := math.Mod(progress, s.progressPerColor) / s.progressPerColor
	if s.swipeInterpolator != nil {
		colorProgress = s.swipeInterpolator(colorProgress)
	}
	currentPosition := colorProgress * s.animationDistance
	return Paint{Shader: &Shader{
		Kind:   GradientLinear,
		Colors: []RGBA{s.colors[next], s.colors[next], s.colors[current], s.colors[current]},
		Positions: []float64{
			-s.blendRange,
			currentPosition - s.blendRange,
			currentPosition,
			s.animationDistance,
		},
		Tile:   s.tile,
		StartX: bounds.StartX,
		StartY: bounds.StartY,
		EndX:   bounds.EndX,
		EndY:   bounds.EndY,
	}}
}

// colorIndex maps progress to the active color segment. Interpolators may
// overshoot [0,1], so the index is clamped to the valid range.
func colorIndex(progress float64, numColors int) int {
	index := int(progress * float64(numColors-1))
	if index < 0 {
		return 0
	}
	if index > numColors-1 {
		return numColors - 1
	}
	return index
}

// nextColorIndex wraps from the last color back to the first.
func nextColorIndex(current, numColors int) int {
	next := current + 1
	if next == numColors {
		return 0
	}
	return next
}
