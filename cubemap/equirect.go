package cubemap

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

// RenderEquirect projects a cube map back onto an equirectangular panorama
// of width x width/2 pixels, the inverse of Render. A width of zero or less
// selects the natural width of four face sides.
func RenderEquirect(cube *CubeMap, width int, opts Options) (*libio.Rgba, error) {
	if cube.Size <= 0 {
		return nil, fmt.Errorf("%w: cube map face size %d", libio.ErrInvalidDimensions, cube.Size)
	}
	if width <= 0 {
		width = cube.Size * 4
	}
	height := width / 2
	if height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", libio.ErrInvalidDimensions, width, height)
	}

	size := float64(cube.Size)
	dst := libio.NewRgba(width, height)

	for py := 0; py < height; py++ {
		lat := math.Pi * (float64(py) + 0.5) / float64(height)
		sinLat, cosLat := math.Sincos(lat)
		for px := 0; px < width; px++ {
			lon := tau*(float64(px)+0.5)/float64(width) - opts.Rotation
			sinLon, cosLon := math.Sincos(lon)

			dir := mgl64.Vec3{sinLat * cosLon, sinLat * sinLon, cosLat}
			face, u, v := directionToFace(dir)

			offset := py*dst.Stride + px*4
			dst.Pix[offset+3] = 0xff

			sample(cube.Faces[face], dst.Pix, u*size-0.5, v*size-0.5, offset, opts.Filter)
		}
	}

	return dst, nil
}

// directionToFace picks the face whose axis dominates the direction and
// returns the face-local coordinate normalized to [0, 1]. It is the exact
// inverse of the per-face orientation formulas.
func directionToFace(d mgl64.Vec3) (face Face, u, v float64) {
	ax := math.Abs(d.X())
	ay := math.Abs(d.Y())
	az := math.Abs(d.Z())

	if ax >= ay && ax >= az {
		if d.X() <= 0 {
			face = FacePositiveZ
			u = -d.Y() / ax
		} else {
			face = FaceNegativeZ
			u = d.Y() / ax
		}
		v = -d.Z() / ax
	} else if ay >= ax && ay >= az {
		if d.Y() <= 0 {
			face = FacePositiveX
			u = d.X() / ay
		} else {
			face = FaceNegativeX
			u = -d.X() / ay
		}
		v = -d.Z() / ay
	} else {
		if d.Z() >= 0 {
			face = FacePositiveY
			u = -d.Y() / az
			v = -d.X() / az
		} else {
			face = FaceNegativeY
			u = -d.Y() / az
			v = d.X() / az
		}
	}

	u = (u + 1.0) / 2.0
	v = (v + 1.0) / 2.0

	return face, u, v
}
