package cubemap

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidFace is returned when a face identifier is not one of the six
// cube faces.
var ErrInvalidFace = errors.New("invalid cube face")

// Face identifies one of the six cube map faces.
type Face int

const (
	FacePositiveZ = Face(iota)
	FaceNegativeZ
	FacePositiveX
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
)

var faceNames = [6]string{"pz", "nz", "px", "nx", "py", "ny"}

// FaceNames returns the six face names in face order.
func FaceNames() []string {
	return faceNames[:]
}

// ParseFace resolves the short face names "pz", "nz", "px", "nx", "py" and
// "ny". Anything else is an ErrInvalidFace.
func ParseFace(name string) (Face, error) {
	for i, n := range faceNames {
		if n == name {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, name)
}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// orientation returns the mapping from face-local coordinates in [-1, 1]
// onto the corresponding side of a cube with side length 2 centered at the
// origin.
func orientation(f Face) (func(x, y float64) mgl64.Vec3, error) {
	switch f {
	case FacePositiveZ:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{-1, -x, -y} }, nil
	case FaceNegativeZ:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{1, x, -y} }, nil
	case FacePositiveX:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{x, -1, -y} }, nil
	case FaceNegativeX:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{-x, 1, -y} }, nil
	case FacePositiveY:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{-y, -x, 1} }, nil
	case FaceNegativeY:
		return func(x, y float64) mgl64.Vec3 { return mgl64.Vec3{y, -x, -1} }, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
}
