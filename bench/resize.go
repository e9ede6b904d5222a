package bench

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// FitSize returns the dimensions of a w×h image scaled so that its longer edge
// equals maxEdge. Images already within maxEdge keep their size.
func FitSize(w, h, maxEdge int) (int, int) {
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxEdge {
		return w, h
	}

	scale := float64(maxEdge) / float64(longer)
	shorter := func(v int) int {
		n := int(math.Round(float64(v) * scale))
		if n < 1 {
			n = 1
		}
		return n
	}
	if w >= h {
		return maxEdge, shorter(h)
	}
	return shorter(w), maxEdge
}

// Fit downscales img so its longer edge equals maxEdge, preserving the aspect
// ratio. It never upscales: smaller images are returned as is.
func Fit(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxEdge)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Load decodes the image at path into memory. The pixels are copied into an
// NRGBA buffer so decoders with lazy conversions do not leak into timings.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return imaging.Clone(img), nil
}
