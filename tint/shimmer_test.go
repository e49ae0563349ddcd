package tint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShimmer(t *testing.T, config ShimmerConfig) *Shimmer {
	t.Helper()
	s, err := NewShimmer(AnimationConfig{Duration: time.Second, EndBehavior: EndLoop}, config)
	require.NoError(t, err)
	return s
}

func TestNewShimmerValidation(t *testing.T) {
	_, err := NewShimmer(AnimationConfig{Duration: 0}, ShimmerConfig{Size: 0.2, Color: testRed})
	assert.Error(t, err, "non-positive duration")

	for _, size := range []float64{0, -0.2, 1.5} {
		_, err := NewShimmer(AnimationConfig{Duration: time.Second},
			ShimmerConfig{Size: size, Color: testRed})
		assert.Error(t, err, "size %v", size)
	}

	for _, fade := range []float64{-0.1, 1.01} {
		_, err := NewShimmer(AnimationConfig{Duration: time.Second},
			ShimmerConfig{Size: 0.2, Color: testRed, FadeRange: fade})
		assert.Error(t, err, "fade range %v", fade)
	}
}

func TestShimmerBandPositions(t *testing.T) {
	s := newTestShimmer(t, ShimmerConfig{Size: 0.2, Color: testRed, FadeRange: 1})

	// Progress 0: the band sits entirely before the target.
	paint := s.createFrame(100, 50, 0, 0)
	require.NotNil(t, paint.Shader)
	pos := paint.Shader.Positions
	require.Len(t, pos, 6)
	assert.InDelta(t, -0.2, pos[1], 1e-9, "band start")
	assert.InDelta(t, 0, pos[4], 1e-9, "band end")

	// Progress 0.5: the band straddles the middle of the target.
	pos = s.createFrame(100, 50, 0.5, 0).Shader.Positions
	assert.InDelta(t, 0.4, pos[1], 1e-9)
	assert.InDelta(t, 0.6, pos[4], 1e-9)
	assert.InDelta(t, 0.5, (pos[1]+pos[4])/2, 1e-9, "band centered")

	// Progress 1: the band sits entirely past the target.
	pos = s.createFrame(100, 50, 1, 0).Shader.Positions
	assert.InDelta(t, 1, pos[1], 1e-9)
	assert.InDelta(t, 1.2, pos[4], 1e-9)
}

func TestShimmerStopLayout(t *testing.T) {
	s := newTestShimmer(t, ShimmerConfig{Size: 0.2, Color: testRed, FadeRange: 0.5})

	paint := s.createFrame(100, 50, 0.5, 0)
	colors := paint.Shader.Colors
	require.Len(t, colors, 6)
	assert.Equal(t, Transparent, colors[0])
	assert.Equal(t, Transparent, colors[1])
	assert.Equal(t, testRed, colors[2])
	assert.Equal(t, testRed, colors[3])
	assert.Equal(t, Transparent, colors[4])
	assert.Equal(t, Transparent, colors[5])

	// fadeRange 0.5 on a 0.2 band fades over 0.05 on each side.
	pos := paint.Shader.Positions
	assert.InDelta(t, 0.45, pos[2], 1e-9)
	assert.InDelta(t, 0.55, pos[3], 1e-9)

	// Stops stay sorted for every progress value.
	for _, progress := range []float64{0, 0.1, 0.5, 0.9, 1} {
		pos := s.createFrame(100, 50, progress, 0).Shader.Positions
		for i := 0; i < len(pos)-1; i++ {
			assert.LessOrEqual(t, pos[i], pos[i+1], "progress %v stop %d", progress, i)
		}
	}
}

func TestShimmerSolidBand(t *testing.T) {
	s := newTestShimmer(t, ShimmerConfig{Size: 0.4, Color: testRed, FadeRange: 0})

	pos := s.createFrame(100, 50, 0.5, 0).Shader.Positions
	assert.Equal(t, pos[1], pos[2], "no fade-in margin")
	assert.Equal(t, pos[3], pos[4], "no fade-out margin")
}

func TestShimmerUsesGradientBounds(t *testing.T) {
	s := newTestShimmer(t, ShimmerConfig{Size: 0.2, Color: testRed, Angle: 20})

	paint := s.createFrame(100, 50, 0.5, 0)
	bounds := NewGradientBounds(RectOf(100, 50), 20)
	assert.Equal(t, bounds.StartX, paint.Shader.StartX)
	assert.Equal(t, bounds.EndX, paint.Shader.EndX)
}
