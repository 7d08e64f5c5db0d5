package cubemap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const tau = 2 * math.Pi

// project converts a point on the cube surface to spherical coordinates,
// rotated around the vertical axis by rotation radians.
//
// The longitude is always normalized into [0, 2pi); a single Mod is not
// enough since it keeps the sign of the dividend. The latitude is in [0, pi].
func project(cube mgl64.Vec3, rotation float64) (lon, lat float64) {
	lon = math.Atan2(cube.Y(), cube.X()) + rotation
	lon = math.Mod(math.Mod(lon, tau)+tau, tau)
	lat = math.Acos(cube.Z() / cube.Len())
	return lon, lat
}
