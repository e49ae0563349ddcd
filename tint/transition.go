package tint

import (
	"fmt"
	"math"
)

// ColorTransitionConfig configures a ColorTransition factory.
type ColorTransitionConfig struct {
	// Colors to transition through, at least two. Looping animations wrap
	// from the last color back to the first.
	Colors []RGBA
	// ColorInterpolator eases the blend within one color segment. Linear
	// when nil.
	ColorInterpolator Interpolator
}

// A ColorTransition is an animated Factory that fades its whole target
// smoothly from one solid color to the next.
type ColorTransition struct {
	*Animated

	colors            []RGBA
	progressPerColor  float64
	colorInterpolator Interpolator
}

// NewColorTransition creates a color transition factory from the configs.
func NewColorTransition(animation AnimationConfig, config ColorTransitionConfig) (*ColorTransition, error) {
	if len(config.Colors) < 2 {
		return nil, fmt.Errorf("tint: color transition needs at least 2 colors, got %d", len(config.Colors))
	}
	t := new(ColorTransition)
	t.colors = append([]RGBA(nil), config.Colors...)
	t.progressPerColor = 1 / float64(len(config.Colors)-1)
	t.colorInterpolator = config.ColorInterpolator
	animated, err := newAnimated(animation, t.createFrame)
	if err != nil {
		return nil, err
	}
	t.Animated = animated
	return t, nil
}

// createFrame interpolates linearly per RGBA channel between the current
// and next color at the eased segment progress. No geometry is involved.
func (t *ColorTransition) createFrame(width, height int, progress float64, completedLaps int) Paint {
	current := colorIndex(progress, len(t.colors))
	next := nextColorIndex(current, len(t.colors))
	colorProgress := math.Mod(progress, t.progressPerColor) / t.progressPerColor
	if t.colorInterpolator != nil {
		colorProgress = t.colorInterpolator(colorProgress)
	}
	return Paint{Color: lerpRGBA(t.colors[current], t.colors[next], colorProgress)}
}
