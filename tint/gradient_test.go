package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRed   = RGBA{R: 1, A: 1}
	testGreen = RGBA{G: 1, A: 1}
	testBlue  = RGBA{B: 1, A: 1}
)

func TestSolidIgnoresSize(t *testing.T) {
	s := NewSolid(testRed, BlendUnset)

	for _, size := range [][2]int{{100, 50}, {1, 1}, {0, 0}} {
		paint := s.CreateTint(size[0], size[1])
		assert.Equal(t, testRed, paint.Color)
		assert.Nil(t, paint.Shader)
		assert.Equal(t, BlendSourceAtop, paint.Blend)
	}

	assert.Equal(t, BlendNone, NewSolid(testRed, BlendNone).CreateTint(10, 10).Blend)
}

func TestNewGradientValidation(t *testing.T) {
	_, err := NewGradient(GradientConfig{Colors: []RGBA{testRed}})
	assert.Error(t, err, "one color is not a gradient")

	_, err = NewGradient(GradientConfig{
		Colors:    []RGBA{testRed, testGreen},
		Positions: []float64{0, 0.5, 1},
	})
	assert.Error(t, err, "positions must match colors")

	_, err = NewGradient(GradientConfig{Colors: []RGBA{testRed, testGreen}})
	assert.NoError(t, err)
}

func TestGradientLinear(t *testing.T) {
	g, err := NewGradient(GradientConfig{
		Colors: []RGBA{testRed, testGreen},
		Angle:  90,
		Tile:   TileRepeat,
	})
	require.NoError(t, err)

	paint := g.CreateTint(100, 50)
	require.NotNil(t, paint.Shader)
	assert.Equal(t, GradientLinear, paint.Shader.Kind)
	assert.Equal(t, []RGBA{testRed, testGreen}, paint.Shader.Colors)
	assert.Nil(t, paint.Shader.Positions, "nil positions mean even distribution")
	assert.Equal(t, TileRepeat, paint.Shader.Tile)

	bounds := NewGradientBounds(RectOf(100, 50), 90)
	assert.Equal(t, bounds.StartX, paint.Shader.StartX)
	assert.Equal(t, bounds.StartY, paint.Shader.StartY)
	assert.Equal(t, bounds.EndX, paint.Shader.EndX)
	assert.Equal(t, bounds.EndY, paint.Shader.EndY)
}

func TestGradientRadial(t *testing.T) {
	g, err := NewGradient(GradientConfig{
		Kind:   GradientRadial,
		Colors: []RGBA{testRed, testGreen, testBlue},
	})
	require.NoError(t, err)

	paint := g.CreateTint(100, 50)
	require.NotNil(t, paint.Shader)
	assert.Equal(t, GradientRadial, paint.Shader.Kind)
	assert.Equal(t, 50.0, paint.Shader.CenterX)
	assert.Equal(t, 25.0, paint.Shader.CenterY)
	assert.Equal(t, 50.0, paint.Shader.Radius, "radius is the larger half extent")
}

func TestGradientSweep(t *testing.T) {
	g, err := NewGradient(GradientConfig{
		Kind:      GradientSweep,
		Colors:    []RGBA{testRed, testGreen},
		Positions: []float64{0, 0.25},
	})
	require.NoError(t, err)

	paint := g.CreateTint(80, 80)
	require.NotNil(t, paint.Shader)
	assert.Equal(t, GradientSweep, paint.Shader.Kind)
	assert.Equal(t, 40.0, paint.Shader.CenterX)
	assert.Equal(t, 40.0, paint.Shader.CenterY)
	assert.Equal(t, []float64{0, 0.25}, paint.Shader.Positions)
}

func TestGradientZeroSizeTarget(t *testing.T) {
	g, err := NewGradient(GradientConfig{Colors: []RGBA{testRed, testGreen}, Angle: 33})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		g.CreateTint(0, 0)
		g.CreateTint(100, 0)
		g.CreateTint(0, 50)
	})
}
