package libio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// EncodeImage writes img in the format implied by the file extension.
// Supported are ".png", ".jpg" and ".jpeg".
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	}
	return fmt.Errorf("unsupported image extension %q", ext)
}
