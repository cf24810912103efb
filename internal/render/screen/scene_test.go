package screen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 0, 200, 255}
	assert.Equal(t, a, lerp(a, b, 0))
	assert.Equal(t, b, lerp(a, b, 1))
	assert.Equal(t, color.RGBA{50, 50, 200, 255}, lerp(a, b, 0.5))
}

func TestWithAlphaPremultiplies(t *testing.T) {
	c := withAlpha(color.RGBA{200, 100, 0, 255}, 0.5)
	assert.Equal(t, color.RGBA{100, 50, 0, 127}, c)
	assert.LessOrEqual(t, c.R, c.A)
}
