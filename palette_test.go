package meshbench

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPalette(t *testing.T) {
	p := NewPalette(rand.New(rand.NewSource(1)), PaletteSize)

	assert.Len(t, p, 20)
	for _, c := range p {
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestPaletteIndex(t *testing.T) {
	p := make(Palette, 20)

	tests := []struct {
		name     string
		centroid Node
		expected int
	}{
		{"Top left", Node{0, 0}, 0},
		{"Center", Node{50, 25}, 10},
		{"Bottom right wraps", Node{100, 50}, 0},
		{"Right edge", Node{100, 0}, 10},
		{"Near bottom right", Node{99, 49}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Index(tt.centroid, 100, 50))
		})
	}
}

func TestNoiseIsBounded(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	tests := []struct {
		base   color.RGBA
		lo, hi uint8
	}{
		{color.RGBA{128, 128, 128, 255}, 88, 168},
		{color.RGBA{250, 250, 250, 255}, 210, 255},
		{color.RGBA{5, 5, 5, 255}, 0, 45},
	}

	for _, tt := range tests {
		for i := 0; i < 1000; i++ {
			c := Noise(r, tt.base, ColorVariation)
			for _, v := range []uint8{c.R, c.G, c.B} {
				assert.GreaterOrEqual(t, v, tt.lo)
				assert.LessOrEqual(t, v, tt.hi)
			}
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 100, Clamp(3, 100, 5000))
	assert.Equal(t, 5000, Clamp(9000, 100, 5000))
	assert.Equal(t, 250, Clamp(250, 100, 5000))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 2, Min(4, 2, 3))
	assert.Equal(t, 4, Max(4, 2, 3))
}
