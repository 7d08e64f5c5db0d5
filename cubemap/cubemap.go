package cubemap

import (
	"image"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

const MagicNumberCUBEMAP = 0x50324342

type CubeMapVersion uint32

const (
	CubeMapVersion1_000_000 = CubeMapVersion(1_000_000)
)

type CubeMapCompression uint32

const (
	CubeMapCompressionNone = CubeMapCompression(iota)
	CubeMapCompressionLZ4Fast
	CubeMapCompressionLZ4
)

type CubeMapHeader struct {
	Check       uint32
	Version     CubeMapVersion
	Compression CubeMapCompression
	Size        uint32
}

// CubeMap holds the six rendered faces, in the order pz, nz, px, nx, py, ny,
// backed by a single contiguous RGBA allocation.
type CubeMap struct {
	Faces [6]*libio.Rgba
	Size  int
	data  []uint8
}

// NewCubeMap wraps data, which must hold 6*size*size*4 bytes, into per-face
// views that alias the backing slice.
func NewCubeMap(data []uint8, size int) *CubeMap {
	o := size * size * 4

	cube := &CubeMap{
		Size: size,
		data: data,
	}
	for i := range cube.Faces {
		cube.Faces[i] = &libio.Rgba{
			Pix:    data[i*o : (i+1)*o : (i+1)*o],
			Stride: size * 4,
			Rect:   image.Rect(0, 0, size, size),
		}
	}
	return cube
}

// Concat returns the backing slice of all six faces.
func (c *CubeMap) Concat() []uint8 {
	return c.data
}

func (c *CubeMap) Face(f Face) *libio.Rgba {
	return c.Faces[f]
}
