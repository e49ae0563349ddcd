package stream

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/seblit/tintlayout/tint"
	"github.com/seblit/tintlayout/util"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		}
	} `yaml:"mqtt"`
	Render struct {
		Width      int     `yaml:"width"`
		Height     int     `yaml:"height"`
		FrameRate  float64 `yaml:"frameRate"`
		Background string  `yaml:"background"`
	} `yaml:"render"`
	Tint TintConfig `yaml:"tint"`
}

// TintConfig selects and parameterizes the tint factory built for the
// stream. Colors are "#rrggbb" or "#aarrggbb" strings.
type TintConfig struct {
	Kind         string    `yaml:"kind"` // solid, gradient, swipe, transition, shimmer
	Colors       []string  `yaml:"colors"`
	Distribution []float64 `yaml:"distribution"`
	GradientType string    `yaml:"gradientType"` // linear, radial, sweep
	Angle        float64   `yaml:"angle"`
	DurationMs   int64     `yaml:"durationMs"`
	EndBehavior  string    `yaml:"endBehavior"` // stick, loop, reset
	Easing       string    `yaml:"easing"`
	BlendRange   float64   `yaml:"blendRange"`
	Size         float64   `yaml:"size"`
	FadeRange    float64   `yaml:"fadeRange"`
}

// BackgroundColor parses the render background, defaulting to black.
func (c Config) BackgroundColor() (colorful.Color, error) {
	if c.Render.Background == "" {
		return colorful.Color{}, nil
	}
	return colorful.Hex(c.Render.Background)
}

// BuildFactory constructs the configured tint factory.
func (c TintConfig) BuildFactory() (tint.Factory, error) {
	colors, err := c.parseColors()
	if err != nil {
		return nil, err
	}
	switch c.Kind {
	case "solid":
		if len(colors) != 1 {
			return nil, fmt.Errorf("stream: solid tint needs exactly 1 color, got %d", len(colors))
		}
		return tint.NewSolid(colors[0], tint.BlendUnset), nil
	case "gradient":
		kind, err := c.gradientKind()
		if err != nil {
			return nil, err
		}
		return tint.NewGradient(tint.GradientConfig{
			Kind:      kind,
			Colors:    colors,
			Positions: c.Distribution,
			Angle:     c.Angle,
		})
	case "swipe":
		animation, err := c.animationConfig()
		if err != nil {
			return nil, err
		}
		easing, err := c.easing()
		if err != nil {
			return nil, err
		}
		return tint.NewColorSwipe(animation, tint.ColorSwipeConfig{
			Colors:            colors,
			Angle:             c.Angle,
			BlendRange:        c.BlendRange,
			SwipeInterpolator: easing,
		})
	case "transition":
		animation, err := c.animationConfig()
		if err != nil {
			return nil, err
		}
		easing, err := c.easing()
		if err != nil {
			return nil, err
		}
		return tint.NewColorTransition(animation, tint.ColorTransitionConfig{
			Colors:            colors,
			ColorInterpolator: easing,
		})
	case "shimmer":
		if len(colors) != 1 {
			return nil, fmt.Errorf("stream: shimmer tint needs exactly 1 color, got %d", len(colors))
		}
		animation, err := c.animationConfig()
		if err != nil {
			return nil, err
		}
		return tint.NewShimmer(animation, tint.ShimmerConfig{
			Size:      c.Size,
			Color:     colors[0],
			FadeRange: c.FadeRange,
			Angle:     c.Angle,
		})
	}
	return nil, fmt.Errorf("stream: unknown tint kind %q", c.Kind)
}

func (c TintConfig) parseColors() ([]tint.RGBA, error) {
	colors := make([]tint.RGBA, 0, len(c.Colors))
	for _, s := range c.Colors {
		color, err := tint.Hex(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, nil
}

func (c TintConfig) gradientKind() (tint.GradientKind, error) {
	switch c.GradientType {
	case "", "linear":
		return tint.GradientLinear, nil
	case "radial":
		return tint.GradientRadial, nil
	case "sweep":
		return tint.GradientSweep, nil
	}
	return 0, fmt.Errorf("stream: unknown gradient type %q", c.GradientType)
}

func (c TintConfig) animationConfig() (tint.AnimationConfig, error) {
	var behavior tint.EndBehavior
	switch c.EndBehavior {
	case "", "stick":
		behavior = tint.EndStick
	case "loop":
		behavior = tint.EndLoop
	case "reset":
		behavior = tint.EndReset
	default:
		return tint.AnimationConfig{}, fmt.Errorf("stream: unknown end behavior %q", c.EndBehavior)
	}
	return tint.AnimationConfig{
		Duration:    time.Duration(c.DurationMs) * time.Millisecond,
		EndBehavior: behavior,
	}, nil
}

func (c TintConfig) easing() (tint.Interpolator, error) {
	if c.Easing == "" {
		return nil, nil
	}
	e, ok := util.EasingByName(c.Easing)
	if !ok {
		return nil, fmt.Errorf("stream: unknown easing %q", c.Easing)
	}
	return e, nil
}
