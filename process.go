package meshbench

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
)

// DefaultBackground is the neutral gray canvas fill painted before the triangles.
// The mesh covers the whole rectangle, so it does not show in the output.
var DefaultBackground = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Generator synthesizes triangulated test images. All randomness comes from
// its own source, so two generators created with the same seed produce the
// same images.
type Generator struct {
	rand *rand.Rand

	// NumColors is the palette size and must be at least one.
	NumColors int
	// Variation bounds the per-channel noise and must not be negative.
	Variation  int
	Background color.RGBA
}

// NewGenerator returns a generator seeded with seed. A zero seed is replaced
// with the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rand:      rand.New(rand.NewSource(seed)),
		NumColors:  PaletteSize,
		Variation:  ColorVariation,
		Background: DefaultBackground,
	}
}

// Mesh samples the point cloud for a width×height image and triangulates it.
func (g *Generator) Mesh(width, height int) ([]Node, []Triangle) {
	points := GetPoints(g.rand, width, height)

	delaunay := &Delaunay{}
	triangles := delaunay.Init(width, height).Insert(points).GetTriangles()

	return delaunay.GetNodes(), triangles
}

// Generate renders a randomly colored triangle mesh covering a width×height canvas.
func (g *Generator) Generate(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if g.NumColors < 1 {
		return nil, &ConfigError{Field: "palette size", Msg: fmt.Sprintf("%d, must be at least 1", g.NumColors)}
	}
	if g.Variation < 0 {
		return nil, &ConfigError{Field: "color variation", Msg: fmt.Sprintf("%d, must not be negative", g.Variation)}
	}

	nodes, triangles := g.Mesh(width, height)
	palette := NewPalette(g.rand, g.NumColors)

	ctx := gg.NewContext(width, height)
	ctx.SetColor(g.Background)
	ctx.Clear()
	ctx.SetLineWidth(1)

	for _, t := range triangles {
		p0, p1, p2 := nodes[t.Nodes[0]], nodes[t.Nodes[1]], nodes[t.Nodes[2]]

		ctx.MoveTo(p0.X, p0.Y)
		ctx.LineTo(p1.X, p1.Y)
		ctx.LineTo(p2.X, p2.Y)
		ctx.ClosePath()

		base := palette[palette.Index(t.Centroid(nodes), width, height)]
		ctx.SetColor(Noise(g.rand, base, g.Variation))
		// Stroking the outline in the fill color closes the antialiased seams
		// between neighbouring triangles.
		ctx.FillPreserve()
		ctx.Stroke()
	}

	return toRGBA(ctx.Image()), nil
}

// Gradient renders a two color linear gradient running horizontally,
// vertically or diagonally, chosen at random.
func (g *Generator) Gradient(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	var start, end [3]float64
	for i := range start {
		start[i] = float64(g.rand.Intn(256))
		end[i] = float64(g.rand.Intn(256))
	}

	ratio := func(v, n int) float64 {
		if n < 2 {
			return 0
		}
		return float64(v) / float64(n-1)
	}

	direction := g.rand.Intn(3)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var t float64
			switch direction {
			case 0:
				t = ratio(x, width)
			case 1:
				t = ratio(y, height)
			default:
				t = (ratio(x, width) + ratio(y, height)) / 2
			}

			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = uint8(Clamp(start[c]+(end[c]-start[c])*t, 0, 255))
			}
			img.Pix[i+3] = 0xff
		}
	}
	return img, nil
}

// toRGBA returns img as *image.RGBA with min-point at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if dst, ok := img.(*image.RGBA); ok && dst.Bounds().Min == (image.Point{}) {
		return dst
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
