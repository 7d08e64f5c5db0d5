package libio

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// DecodeRgba reads any registered image format and converts the result to a
// tightly packed Rgba with the origin at (0, 0).
func DecodeRgba(r io.Reader) (*Rgba, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == image.Pt(0, 0) && rgba.Stride == w*4 {
		return &Rgba{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}, nil
	}

	dst := NewRgba(w, h)
	tmp := &image.RGBA{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}
	xdraw.Copy(tmp, image.Pt(0, 0), img, bounds, xdraw.Src, nil)
	return dst, nil
}
