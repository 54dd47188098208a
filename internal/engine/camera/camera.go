// Package camera provides the orbit camera that circles the globe.
package camera

import (
	gomath "math"
	"time"

	"github.com/Faultbox/dotglobe/pkg/math"
)

// referenceFPS is the frame rate damping and auto-rotation are tuned for.
const referenceFPS = 60

// OrbitCamera orbits the origin with auto-rotation and damped drag input.
type OrbitCamera struct {
	// Spherical coordinates
	Distance float32 // Distance from the origin
	Pitch    float32 // Elevation above the equator (radians)
	Yaw      float32 // Rotation about the Y axis (radians)

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Motion
	AutoRotate      bool
	AutoRotateSpeed float32 // 1.0 is one revolution per minute
	Damping         float32 // fraction of pending rotation applied per reference frame
	RotateSpeed     float32

	// Projection
	FOV  float32 // Vertical field of view (degrees)
	Near float32
	Far  float32

	// Resting distance by viewport width
	WideDistance   float32
	NarrowDistance float32
	NarrowWidth    int

	yawDelta   float32
	pitchDelta float32
}

// NewOrbitCamera creates a camera with the stock globe settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        100,
		MinPitch:        -0.5,
		MaxPitch:        0.5,
		AutoRotate:      true,
		AutoRotateSpeed: 1.2,
		Damping:         0.05,
		RotateSpeed:     1,
		FOV:             30,
		Near:            1,
		Far:             1000,
		WideDistance:    100,
		NarrowDistance:  140,
		NarrowWidth:     700,
	}
}

// RestingDistance returns the camera distance for a viewport width:
// WideDistance when wider than NarrowWidth, NarrowDistance otherwise.
func (c *OrbitCamera) RestingDistance(width int) float32 {
	if width > c.NarrowWidth {
		return c.WideDistance
	}
	return c.NarrowDistance
}

// Resize moves the camera to the resting distance for width.
func (c *OrbitCamera) Resize(width int) {
	c.Distance = c.RestingDistance(width)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	return math.V3(
		float64(c.Distance)*cp*gomath.Sin(float64(c.Yaw)),
		float64(c.Distance)*gomath.Sin(float64(c.Pitch)),
		float64(c.Distance)*cp*gomath.Cos(float64(c.Yaw)),
	)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), math.Vec3{}, up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag queues rotation for a pointer drag of (dx, dy) pixels. A drag
// the full viewport height turns the globe once.
func (c *OrbitCamera) HandleDrag(dx, dy float32, viewportH int) {
	if viewportH <= 0 {
		return
	}
	scale := 2 * gomath.Pi * c.RotateSpeed / float32(viewportH)
	c.yawDelta -= dx * scale
	c.pitchDelta += dy * scale
}

// Update applies auto-rotation and eases queued rotation in.
func (c *OrbitCamera) Update(dt time.Duration) {
	frames := dt.Seconds() * referenceFPS
	if frames <= 0 {
		return
	}

	if c.AutoRotate {
		// One revolution per minute at speed 1.
		c.yawDelta -= float32(2 * gomath.Pi / 60 * float64(c.AutoRotateSpeed) * dt.Seconds())
	}

	// Fraction of the pending delta applied over this step.
	k := float32(1)
	if c.Damping > 0 && c.Damping < 1 {
		k = float32(1 - gomath.Pow(1-float64(c.Damping), frames))
	}

	c.Yaw += c.yawDelta * k
	c.Pitch += c.pitchDelta * k
	c.yawDelta *= 1 - k
	c.pitchDelta *= 1 - k

	c.Yaw = float32(gomath.Remainder(float64(c.Yaw), 2*gomath.Pi))
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
		c.pitchDelta = 0
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
		c.pitchDelta = 0
	}
}
