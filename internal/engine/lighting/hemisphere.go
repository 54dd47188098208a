// Package lighting provides the light models used by the globe shaders.
package lighting

import (
	"github.com/Faultbox/dotglobe/pkg/math"
)

// Hemisphere is a sky/ground light: surfaces facing +Y receive Sky, surfaces
// facing -Y receive Ground, and everything between a blend of the two.
type Hemisphere struct {
	Sky       [3]float32
	Ground    [3]float32
	Intensity float32
}

// DefaultHemisphere is the warm-sky, deep-blue-ground light over the globe.
func DefaultHemisphere() Hemisphere {
	return Hemisphere{
		Sky:       RGB(0xffffcc),
		Ground:    RGB(0x080820),
		Intensity: 2.5,
	}
}

// Irradiance returns the light reaching a surface with the given normal.
// It matches the sphere fragment shader.
func (h Hemisphere) Irradiance(normal math.Vec3) [3]float32 {
	w := 0.5*normal.Normalize().Y + 0.5
	var out [3]float32
	for i := range out {
		out[i] = (h.Ground[i]*(1-w) + h.Sky[i]*w) * h.Intensity
	}
	return out
}

// RGB converts a 0xRRGGBB colour to components in [0, 1].
func RGB(hex uint32) [3]float32 {
	return [3]float32{
		float32(hex>>16&0xff) / 255,
		float32(hex>>8&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
