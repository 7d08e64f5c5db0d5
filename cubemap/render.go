package cubemap

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

// Options bundles the rendering parameters shared by all faces.
type Options struct {
	// Rotation around the vertical axis in radians. Any real value is
	// accepted, the projection normalizes it.
	Rotation float64
	Filter   Interpolation
	// MaxWidth caps the face size; zero or negative means unbounded.
	MaxWidth int
}

// faceSize ties the face resolution to the source panorama: a cube face
// covers a quarter of the horizontal sweep at matching vertical resolution.
func faceSize(srcWidth, maxWidth int) int {
	size := srcWidth / 4
	if maxWidth > 0 && maxWidth < size {
		size = maxWidth
	}
	return size
}

func validateSource(src *libio.Rgba) error {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w < 4 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", libio.ErrInvalidDimensions, w, h)
	}
	if len(src.Pix) != w*h*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d rgba", libio.ErrInvalidDimensions, len(src.Pix), w, h)
	}
	return nil
}

// RenderFace renders a single cube face from an equirectangular source into
// a freshly allocated buffer. The source is only read.
func RenderFace(src *libio.Rgba, face Face, opts Options) (*libio.Rgba, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	orient, err := orientation(face)
	if err != nil {
		return nil, err
	}

	size := faceSize(src.Rect.Dx(), opts.MaxWidth)
	dst := libio.NewRgba(size, size)
	renderFaceInto(dst, src, orient, opts)
	return dst, nil
}

// Render renders all six faces, one goroutine per face. The faces have no
// data dependency on each other: every goroutine writes only its own face
// buffer and the shared source is never mutated.
func Render(src *libio.Rgba, opts Options) (*CubeMap, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	var orients [6]func(x, y float64) mgl64.Vec3
	for i := range orients {
		orient, err := orientation(Face(i))
		if err != nil {
			return nil, err
		}
		orients[i] = orient
	}

	size := faceSize(src.Rect.Dx(), opts.MaxWidth)
	cube := NewCubeMap(make([]uint8, 6*size*size*4), size)

	var wg sync.WaitGroup
	for i := range cube.Faces {
		wg.Add(1)
		go func(dst *libio.Rgba, orient func(x, y float64) mgl64.Vec3) {
			defer wg.Done()
			renderFaceInto(dst, src, orient, opts)
		}(cube.Faces[i], orients[i])
	}
	wg.Wait()

	return cube, nil
}

func renderFaceInto(dst, src *libio.Rgba, orient func(x, y float64) mgl64.Vec3, opts Options) {
	size := dst.Rect.Dx()
	srcW := float64(src.Rect.Dx())
	srcH := float64(src.Rect.Dy())

	for py := 0; py < size; py++ {
		// (2p+1)/size - 1 places the sample at the pixel center
		fy := (2.0*float64(py)+1.0)/float64(size) - 1.0
		for px := 0; px < size; px++ {
			fx := (2.0*float64(px)+1.0)/float64(size) - 1.0

			offset := py*dst.Stride + px*4
			dst.Pix[offset+3] = 0xff

			lon, lat := project(orient(fx, fy), opts.Rotation)
			// -0.5 to adjust for the pixel center offset
			srcX := srcW*lon/tau - 0.5
			srcY := srcH*lat/math.Pi - 0.5

			sample(src, dst.Pix, srcX, srcY, offset, opts.Filter)
		}
	}
}
