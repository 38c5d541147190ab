package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2, 3, 0))
	assert.Equal(t, 2.5, Lerp(2, 3, 0.5))
	assert.Equal(t, -4.0, Lerp(0, -8, 0.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(-3, 0.1, 1))
	assert.Equal(t, 1.0, Clamp(7, 0.1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 1))
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, 0, SaturatingSub(3, 5))
	assert.Equal(t, 3, SaturatingSub(3, -5))
	assert.Equal(t, math.MaxInt, SaturatingAdd(math.MaxInt-1, 5))
	assert.Equal(t, 7, SaturatingAdd(7, -1))
}
