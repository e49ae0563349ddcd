package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := Hex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)
	assert.Equal(t, 1.0, c.A)

	c, err = Hex("#80ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)

	for _, s := range []string{"", "#fff", "red", "#gg0000", "#12345", "#ff00112233"} {
		_, err := Hex(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestLerpRGBA(t *testing.T) {
	red := RGBA{R: 1, A: 1}
	green := RGBA{G: 1, A: 1}

	assert.Equal(t, red, lerpRGBA(red, green, 0))
	assert.Equal(t, green, lerpRGBA(red, green, 1))
	assert.Equal(t, RGBA{R: 0.5, G: 0.5, A: 1}, lerpRGBA(red, green, 0.5))

	// Alpha interpolates alongside the color channels.
	mid := lerpRGBA(Transparent, red, 0.5)
	assert.Equal(t, RGBA{R: 0.5, A: 0.5}, mid)
}
