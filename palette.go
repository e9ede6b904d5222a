package meshbench

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// PaletteSize is the number of base colors drawn for each image.
	PaletteSize = 20
	// ColorVariation bounds the per-channel noise added to every triangle.
	ColorVariation = 40
)

// Palette is an ordered set of base colors shared by all triangles of one image.
type Palette []color.RGBA

// NewPalette draws n independent random opaque colors.
func NewPalette(r *rand.Rand, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = color.RGBA{
			R: uint8(r.Intn(256)),
			G: uint8(r.Intn(256)),
			B: uint8(r.Intn(256)),
			A: 255,
		}
	}
	return p
}

// Index maps a centroid to a palette slot. Positions along the main diagonal
// share a color band, which gives the mesh its sweeping gradient look.
func (p Palette) Index(c Node, width, height int) int {
	n := len(p)
	i := int(math.Floor((c.X/float64(width) + c.Y/float64(height)) * float64(n) / 2))

	return i % n
}

// Noise perturbs every channel of c by an independent amount in
// [-variation, variation], clamped to the valid channel range.
func Noise(r *rand.Rand, c color.RGBA, variation int) color.RGBA {
	jitter := func(v uint8) uint8 {
		return uint8(Clamp(int(v)+r.Intn(2*variation+1)-variation, 0, 255))
	}
	return color.RGBA{
		R: jitter(c.R),
		G: jitter(c.G),
		B: jitter(c.B),
		A: 255,
	}
}
