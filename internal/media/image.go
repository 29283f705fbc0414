package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxDimension = 1600

// EncodeWebP decodes a jpeg/png upload, downscales it so neither side
// exceeds maxDimension, and re-encodes as webp.
func EncodeWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxDimension || h > maxDimension {
		scale := float64(maxDimension) / float64(w)
		if h > w {
			scale = float64(maxDimension) / float64(h)
		}

		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
