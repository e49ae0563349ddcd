package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"linear", "inOutQuad", "outCubic", "outBounce"} {
		e, ok := EasingByName(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
	}

	_, ok := EasingByName("zigzag")
	assert.False(t, ok)
}
