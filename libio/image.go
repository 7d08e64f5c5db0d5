package libio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrInvalidDimensions = errors.New("invalid image dimensions")

// Rgba is an 8-bit RGBA image backed by a single contiguous allocation.
// It implements image.Image.
type Rgba struct {
	// Pix holds the image's pixels, in R, G, B, A order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewRgba returns a zeroed width x height image.
func NewRgba(width, height int) *Rgba {
	return &Rgba{
		Pix:    make([]uint8, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// WrapRgba wraps an existing pixel slice without copying it. The slice
// length must match the declared dimensions exactly.
func WrapRgba(pix []uint8, width, height int) (*Rgba, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d rgba", ErrInvalidDimensions, len(pix), width, height)
	}
	return &Rgba{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

func (p *Rgba) ColorModel() color.Model { return color.RGBAModel }

func (p *Rgba) Bounds() image.Rectangle { return p.Rect }

func (p *Rgba) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i+0], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *Rgba) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}
