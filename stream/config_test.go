package stream

import (
	"testing"

	"github.com/seblit/tintlayout/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuildFactoryKinds(t *testing.T) {
	tests := []struct {
		name   string
		config TintConfig
		want   any
	}{
		{
			"solid",
			TintConfig{Kind: "solid", Colors: []string{"#ff0000"}},
			&tint.Solid{},
		},
		{
			"gradient",
			TintConfig{Kind: "gradient", Colors: []string{"#ff0000", "#0000ff"}, GradientType: "radial"},
			&tint.Gradient{},
		},
		{
			"swipe",
			TintConfig{Kind: "swipe", Colors: []string{"#ff0000", "#0000ff"}, DurationMs: 500, BlendRange: 0.2},
			&tint.ColorSwipe{},
		},
		{
			"transition",
			TintConfig{Kind: "transition", Colors: []string{"#ff0000", "#0000ff"}, DurationMs: 500, EndBehavior: "loop"},
			&tint.ColorTransition{},
		},
		{
			"shimmer",
			TintConfig{Kind: "shimmer", Colors: []string{"#ffffff"}, DurationMs: 500, Size: 0.3, FadeRange: 1},
			&tint.Shimmer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.config.BuildFactory()
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestBuildFactoryErrors(t *testing.T) {
	tests := []struct {
		name   string
		config TintConfig
	}{
		{"unknown kind", TintConfig{Kind: "plasma"}},
		{"bad color", TintConfig{Kind: "solid", Colors: []string{"red"}}},
		{"solid color count", TintConfig{Kind: "solid", Colors: []string{"#ff0000", "#00ff00"}}},
		{"bad gradient type", TintConfig{Kind: "gradient", Colors: []string{"#ff0000", "#00ff00"}, GradientType: "conic"}},
		{"missing duration", TintConfig{Kind: "swipe", Colors: []string{"#ff0000", "#00ff00"}}},
		{"bad end behavior", TintConfig{Kind: "swipe", Colors: []string{"#ff0000", "#00ff00"}, DurationMs: 500, EndBehavior: "bounce"}},
		{"bad easing", TintConfig{Kind: "transition", Colors: []string{"#ff0000", "#00ff00"}, DurationMs: 500, Easing: "zigzag"}},
		{"shimmer size", TintConfig{Kind: "shimmer", Colors: []string{"#ffffff"}, DurationMs: 500, Size: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.config.BuildFactory()
			assert.Error(t, err)
		})
	}
}

func TestBuildFactoryAnimatedConfig(t *testing.T) {
	config := TintConfig{
		Kind:        "transition",
		Colors:      []string{"#ff0000", "#00ff00"},
		DurationMs:  750,
		EndBehavior: "loop",
		Easing:      "inOutQuad",
	}

	f, err := config.BuildFactory()
	require.NoError(t, err)
	animator, ok := f.(tint.Animator)
	require.True(t, ok)
	assert.EqualValues(t, 750, animator.Timeline().Duration().Milliseconds())
	assert.Equal(t, tint.EndLoop, animator.Timeline().EndBehavior())
}

func TestConfigDecode(t *testing.T) {
	raw := `
mqtt:
  url: tcp://localhost:1883
  topics:
    stream: home/panel/stream
    control: home/panel/control
render:
  width: 64
  height: 32
  frameRate: 25
  background: "#101010"
tint:
  kind: shimmer
  colors: ["#ffffff"]
  durationMs: 1500
  endBehavior: loop
  size: 0.25
  fadeRange: 1
  angle: 45
`
	var config Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &config))
	assert.Equal(t, "home/panel/stream", config.Mqtt.Topics.Stream)
	assert.Equal(t, 64, config.Render.Width)
	assert.Equal(t, "shimmer", config.Tint.Kind)

	background, err := config.BackgroundColor()
	require.NoError(t, err)
	assert.InDelta(t, 16.0/255, background.R, 1e-9)

	_, err = config.Tint.BuildFactory()
	assert.NoError(t, err)
}
