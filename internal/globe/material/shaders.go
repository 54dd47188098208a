package material

import (
	gomath "math"

	"github.com/Faultbox/dotglobe/pkg/math"
)

// Side selects which triangle faces a program draws.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

// Dots render both faces so those behind the translucent sphere stay
// visible; the sphere only renders its front.
const (
	DotSide    = DoubleSide
	SphereSide = FrontSide
)

// Twinkle colours blended by |sin(time)|.
var (
	ColorA = [3]float32{0, 1, 0.48}
	ColorB = [3]float32{0, 0.75, 0.36}
)

// Displace applies the dot vertex contract to a world-space position: scale
// by Extrusion, and while extruded past the baseline add sin(Time) to every
// component so raised dots breathe.
func Displace(p math.Vec3, u Uniforms) math.Vec3 {
	out := p.Scale(u.Extrusion)
	if u.Extrusion > Baseline {
		s := float32(gomath.Sin(float64(u.Time)))
		out = out.Add(math.Vec3{X: s, Y: s, Z: s})
	}
	return out
}

// Color applies the dot fragment contract.
func Color(u Uniforms) [3]float32 {
	pct := float32(gomath.Abs(gomath.Sin(float64(u.Time))))
	var c [3]float32
	for i := range c {
		c[i] = ColorA[i]*(1-pct) + ColorB[i]*pct
	}
	return c
}

// DotVertexShader mirrors Displace. Time and extrusion arrive per vertex so
// the whole field draws in one call.
const DotVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in float aTime;
layout (location = 2) in float aExtrusion;

uniform mat4 uView;
uniform mat4 uProjection;

out float vTime;

void main() {
	vec3 p = aPos * aExtrusion;
	if (aExtrusion > 1.0) {
		p += sin(aTime);
	}
	vTime = aTime;
	gl_Position = uProjection * uView * vec4(p, 1.0);
}
`

// DotFragmentShader mirrors Color.
const DotFragmentShader = `
#version 410 core

in float vTime;
out vec4 FragColor;

const vec3 colorA = vec3(0.0, 1.0, 0.48);
const vec3 colorB = vec3(0.0, 0.75, 0.36);

void main() {
	float pct = abs(sin(vTime));
	FragColor = vec4(mix(colorA, colorB, pct), 1.0);
}
`

// SphereVertexShader draws the translucent base sphere.
const SphereVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
	vNormal = aNormal;
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
}
`

// SphereFragmentShader lights the base sphere with a hemisphere light: sky
// colour from above, ground colour from below.
const SphereFragmentShader = `
#version 410 core

in vec3 vNormal;
out vec4 FragColor;

uniform vec3 uColor;
uniform float uOpacity;
uniform vec3 uSkyColor;
uniform vec3 uGroundColor;
uniform float uLightIntensity;

void main() {
	float w = 0.5 * dot(normalize(vNormal), vec3(0.0, 1.0, 0.0)) + 0.5;
	vec3 light = mix(uGroundColor, uSkyColor, w) * uLightIntensity;
	FragColor = vec4(uColor * light, uOpacity);
}
`
