// Package sphere holds the globe's coordinate system: lon/lat projection onto
// a sphere and the small meshes built on it.
package sphere

import (
	gomath "math"

	"github.com/Faultbox/dotglobe/pkg/math"
)

// Projector maps geographic degrees onto a sphere centred at the origin.
// +Y is north; longitude -180 lies on +X, matching the mask texture origin.
type Projector struct {
	Radius float64
}

// Project converts (lon, lat) in degrees to Cartesian coordinates.
func (p Projector) Project(lon, lat float64) (x, y, z float64) {
	phi := (90 - lat) * gomath.Pi / 180
	theta := (lon + 180) * gomath.Pi / 180

	x = -(p.Radius * gomath.Sin(phi) * gomath.Cos(theta))
	z = p.Radius * gomath.Sin(phi) * gomath.Sin(theta)
	y = p.Radius * gomath.Cos(phi)
	return x, y, z
}

// Point is Project narrowed to float32 for GPU upload.
func (p Projector) Point(lon, lat float64) math.Vec3 {
	return math.V3(p.Project(lon, lat))
}
