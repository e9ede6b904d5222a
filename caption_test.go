package meshbench

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

func TestCaptionLines(t *testing.T) {
	lines := CaptionLines(3, 6000, 4000, "24mp")

	assert.Equal(t, []string{
		"Image #03",
		"6000 x 4000",
		"24.0 MP (24mp)",
	}, lines)
}

func TestCaptionSize(t *testing.T) {
	assert.Equal(t, 20.0, CaptionSize(100, 100))
	assert.Equal(t, 100.0, CaptionSize(3000, 2000))
	assert.Equal(t, 400.0, CaptionSize(12000, 8000))
}

func TestCaption(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 300))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.RGBA{40, 90, 160, 255}}, image.Point{}, draw.Src)
	orig := append([]uint8(nil), src.Pix...)

	out := Caption(src, 1, "test", FontChain{EmbeddedFont(gobold.TTF)})

	require.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, orig, src.Pix, "source image must not be modified")
	assert.NotEqual(t, src.Pix, out.Pix)

	var white, black bool
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
		white = white || (r >= 240 && g >= 240 && b >= 240)
		black = black || (r <= 15 && g <= 15 && b <= 15)
	}
	assert.True(t, white, "caption text is missing")
	assert.True(t, black, "caption shadow is missing")

	// The text is centered, so the corners keep the background.
	assert.Equal(t, color.RGBA{40, 90, 160, 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{40, 90, 160, 255}, out.RGBAAt(399, 299))
}

func TestFontChainFallback(t *testing.T) {
	t.Run("Missing files", func(t *testing.T) {
		chain := FontChain{FileFont("/nonexistent/font.ttf"), EmbeddedFont(gobold.TTF)}
		face := chain.Face(24)
		require.NotNil(t, face)
		assert.NotEqual(t, basicfont.Face7x13, face)
	})

	t.Run("Broken font data", func(t *testing.T) {
		chain := FontChain{EmbeddedFont([]byte("not a font"))}
		assert.Equal(t, basicfont.Face7x13, chain.Face(24))
	})

	t.Run("Empty chain", func(t *testing.T) {
		assert.Equal(t, basicfont.Face7x13, FontChain{}.Face(24))
	})

	t.Run("Default chain", func(t *testing.T) {
		assert.NotNil(t, DefaultFonts.Face(32))
	})
}

func TestCollectionFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobold.ttf")
	require.NoError(t, os.WriteFile(path, gobold.TTF, 0644))

	face, err := CollectionFont{Path: path}.Face(24)
	require.NoError(t, err)
	assert.Greater(t, face.Metrics().Height.Ceil(), 13)

	_, err = CollectionFont{Path: path, Index: 1}.Face(24)
	assert.Error(t, err)

	_, err = CollectionFont{Path: filepath.Join(t.TempDir(), "missing.ttc")}.Face(24)
	assert.Error(t, err)

	chain := FontChain{CollectionFont{Path: path, Index: 2}, BasicFont{}}
	assert.Equal(t, basicfont.Face7x13, chain.Face(24))
}
