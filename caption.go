package meshbench

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// CaptionLines returns the text printed on a generated image.
func CaptionLines(index, width, height int, label string) []string {
	megapixels := float64(width) * float64(height) / 1e6

	return []string{
		fmt.Sprintf("Image #%02d", index),
		fmt.Sprintf("%d x %d", width, height),
		fmt.Sprintf("%.1f MP (%s)", megapixels, label),
	}
}

// CaptionSize returns the font size used for an image of the given size.
func CaptionSize(width, height int) float64 {
	return float64(Max(20, Min(width, height)/20))
}

// Caption draws the image index, its dimensions and the resolution label
// centered on a copy of img. A dark shadow is painted under the light text
// so it stays readable over any background.
func Caption(img image.Image, index int, label string, fonts FontChain) *image.RGBA {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	size := CaptionSize(width, height)
	lines := CaptionLines(index, width, height, label)

	ctx := gg.NewContextForImage(img)
	ctx.SetFontFace(fonts.Face(size))

	lineHeight := ctx.FontHeight() * 1.2
	top := float64(height)/2 - lineHeight*float64(len(lines)-1)/2
	shadow := float64(Max(2, int(size)/20))

	draw := func(c color.Color, dx, dy float64) {
		ctx.SetColor(c)
		for i, line := range lines {
			ctx.DrawStringAnchored(line, float64(width)/2+dx, top+float64(i)*lineHeight+dy, 0.5, 0.5)
		}
	}
	draw(color.Black, shadow, shadow)
	draw(color.White, 0, 0)

	return toRGBA(ctx.Image())
}
