// Package globe ties the dot field, camera and pointer controller into one
// rendering context and drives them frame by frame.
package globe

import (
	"github.com/Faultbox/dotglobe/internal/config"
	"github.com/Faultbox/dotglobe/internal/engine/camera"
	"github.com/Faultbox/dotglobe/internal/engine/lighting"
	"github.com/Faultbox/dotglobe/internal/engine/picking"
	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/globe/sphere"
)

// Base sphere appearance.
var (
	BaseColor   = lighting.RGB(0x054d74)
	BaseOpacity = float32(0.7)
)

// Context is the scene state shared by the loop, the controller and the
// renderer. It is built once at startup and passed explicitly.
type Context struct {
	Camera *camera.OrbitCamera
	Picker *picking.SpherePicker
	Base   *sphere.Mesh
	Light  lighting.Hemisphere

	// Field is nil until the land mask has loaded.
	Field *dotfield.Field

	Width, Height int
}

// NewContext builds the camera, picker and base sphere from cfg.
func NewContext(cfg *config.Config) *Context {
	cam := camera.NewOrbitCamera()
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.AutoRotateSpeed = cfg.Camera.AutoRotateSpeed
	cam.Damping = cfg.Camera.Damping
	cam.MinPitch = -cfg.Camera.PitchRange
	cam.MaxPitch = cfg.Camera.PitchRange
	cam.WideDistance = cfg.Camera.WideDistance
	cam.NarrowDistance = cfg.Camera.NarrowDistance
	cam.NarrowWidth = cfg.Camera.NarrowWidth

	baseRadius := float32(cfg.Globe.BaseRadius)
	ctx := &Context{
		Camera: cam,
		Picker: picking.NewSpherePicker(cam, baseRadius),
		Base:   sphere.UVSphere(baseRadius, cfg.Globe.BaseSegments, cfg.Globe.BaseSegments),
		Light:  lighting.DefaultHemisphere(),
	}
	ctx.Resize(cfg.Graphics.Width, cfg.Graphics.Height)
	return ctx
}

// Resize updates the viewport, the picker and the camera's resting distance.
func (c *Context) Resize(width, height int) {
	c.Width = width
	c.Height = height
	if c.Picker != nil {
		c.Picker.SetViewport(width, height)
	}
	if c.Camera != nil {
		c.Camera.Resize(width)
	}
}

// Aspect returns width over height, or 1 for an empty viewport.
func (c *Context) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// Materials returns the dot materials, or nil before the field exists.
func (c *Context) Materials() []*material.Animated {
	return c.Field.Materials()
}
