package bench

import (
	"fmt"
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Format is an output encoding and the file extension it is saved with.
type Format struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

// Output formats.
var (
	JPEG = Format{Name: "jpeg", Ext: ".jpg"}
	WebP = Format{Name: "webp", Ext: ".webp"}
)

// EncodeFunc writes img to w at the given quality (1-100).
type EncodeFunc func(w io.Writer, img image.Image, quality int) error

var encoders = map[string]EncodeFunc{
	JPEG.Name: encodeJPEG,
	WebP.Name: encodeWebP,
}

// RegisterEncoder makes a format name available to matrices.
func RegisterEncoder(name string, fn EncodeFunc) {
	encoders[name] = fn
}

// Encode writes img in format f.
func (f Format) Encode(w io.Writer, img image.Image, quality int) error {
	fn, ok := encoders[f.Name]
	if !ok {
		return fmt.Errorf("no encoder registered for %q", f.Name)
	}
	return fn(w, img, quality)
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}

func encodeWebP(w io.Writer, img image.Image, quality int) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}
