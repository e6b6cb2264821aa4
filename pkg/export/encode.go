package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// EncodeWebP writes the image as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("encoding WebP: %w", err)
	}
	return nil
}
