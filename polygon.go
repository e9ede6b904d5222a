package meshbench

import (
	"math"
	"math/rand"
)

const (
	// pointsPerMegapixel defines the mesh density.
	// Changing this value will modify the triangles sizes.
	pointsPerMegapixel = 50

	minPoints = 100
	maxPoints = 5000
)

// PointCount returns the number of random points sampled for an image of the
// given size, clamped so tiny images are not empty and huge ones stay cheap.
func PointCount(width, height int) int {
	megapixels := float64(width) * float64(height) / 1e6
	n := int(math.Round(pointsPerMegapixel * megapixels))

	return Clamp(n, minPoints, maxPoints)
}

// Anchors returns the four corners and four edge midpoints of the image.
func Anchors(width, height int) []Node {
	w, h := float64(width), float64(height)

	return []Node{
		{0, 0}, {w, 0}, {0, h}, {w, h},
		{w / 2, 0}, {w / 2, h}, {0, h / 2}, {w, h / 2},
	}
}

// GetPoints returns the anchors followed by PointCount uniformly distributed
// points inside the image rectangle.
func GetPoints(r *rand.Rand, width, height int) []Node {
	n := PointCount(width, height)
	points := make([]Node, 0, n+8)
	points = append(points, Anchors(width, height)...)

	for i := 0; i < n; i++ {
		points = append(points, Node{
			X: r.Float64() * float64(width),
			Y: r.Float64() * float64(height),
		})
	}
	return points
}
