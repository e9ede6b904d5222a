package meshbench

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontProvider yields a font face at the requested point size.
type FontProvider interface {
	Face(size float64) (font.Face, error)
}

// FileFont loads a TrueType font from disk.
type FileFont string

// Face parses the font file and returns a face of the given size.
func (f FileFont) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return parseFace(data, size)
}

// CollectionFont loads one font of a TrueType or OpenType collection (.ttc)
// from disk. A plain font file is read as a collection of one.
type CollectionFont struct {
	Path  string
	Index int
}

// Face parses the collection and returns a face of the selected font.
func (f CollectionFont) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font collection: %w", err)
	}
	if f.Index < 0 || f.Index >= c.NumFonts() {
		return nil, fmt.Errorf("font index %d out of range, collection has %d fonts", f.Index, c.NumFonts())
	}
	sf, err := c.Font(f.Index)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// EmbeddedFont is a TrueType font compiled into the binary.
type EmbeddedFont []byte

// Face parses the embedded font and returns a face of the given size.
func (f EmbeddedFont) Face(size float64) (font.Face, error) {
	return parseFace(f, size)
}

// BasicFont is the fixed 7x13 bitmap font. It ignores the size and never fails.
type BasicFont struct{}

// Face returns the bitmap face.
func (BasicFont) Face(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

func parseFace(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	}), nil
}

// FontChain tries its providers in order and uses the first that succeeds.
type FontChain []FontProvider

// DefaultFonts prefers common bold system fonts and falls back to fonts that
// are always available.
var DefaultFonts = FontChain{
	FileFont("/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"),
	FileFont("/usr/share/fonts/TTF/DejaVuSans-Bold.ttf"),
	FileFont("/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"),
	CollectionFont{Path: "/System/Library/Fonts/Helvetica.ttc", Index: 1},
	EmbeddedFont(gobold.TTF),
	BasicFont{},
}

// Face returns the first face the chain can produce. When every provider
// fails the bitmap font is used.
func (c FontChain) Face(size float64) font.Face {
	for _, p := range c {
		if face, err := p.Face(size); err == nil {
			return face
		}
	}
	face, _ := BasicFont{}.Face(size)
	return face
}
