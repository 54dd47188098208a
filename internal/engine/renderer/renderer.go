// Package renderer draws the globe with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/dotglobe/internal/engine/shader"
	"github.com/Faultbox/dotglobe/internal/globe"
	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/globe/sphere"
	"github.com/Faultbox/dotglobe/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // drawable size in pixels
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	sphereProg *shader.Program
	dotProg    *shader.Program

	sphereVAO     uint32
	sphereVBO     [2]uint32 // positions, normals
	sphereEBO     uint32
	sphereIndices int32

	dotVAO      uint32
	dotPosVBO   uint32
	dotAttrVBO  uint32 // time and extrusion per vertex, rewritten every frame
	dotVertices int32
	perDot      int
	attrs       []float32
}

// New creates a renderer and uploads the base sphere.
// Must be called after the OpenGL context is created.
func New(cfg Config, base *sphere.Mesh) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	if r.sphereProg, err = shader.Compile("sphere", material.SphereVertexShader, material.SphereFragmentShader); err != nil {
		return nil, err
	}
	if r.dotProg, err = shader.Compile("dot", material.DotVertexShader, material.DotFragmentShader); err != nil {
		r.sphereProg.Delete()
		return nil, err
	}

	if base != nil {
		r.uploadSphere(base)
	}
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases GL objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer")

	r.deleteDots()
	if r.sphereVAO != 0 {
		gl.DeleteVertexArrays(1, &r.sphereVAO)
		gl.DeleteBuffers(2, &r.sphereVBO[0])
		gl.DeleteBuffers(1, &r.sphereEBO)
	}
	if r.sphereProg != nil {
		r.sphereProg.Delete()
	}
	if r.dotProg != nil {
		r.dotProg.Delete()
	}
}

// Resize handles drawable size changes.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload builds the dot geometry. The positions are static; only the
// per-vertex time and extrusion change afterwards.
func (r *Renderer) Upload(f *dotfield.Field) error {
	r.deleteDots()
	if f.Len() == 0 {
		return nil
	}

	r.perDot = len(f.Dots[0].Disc.Vertices)
	n := f.Len() * r.perDot

	positions := make([]float32, 0, n*3)
	for i := range f.Dots {
		verts := f.Dots[i].Disc.Vertices
		if len(verts) != r.perDot {
			return fmt.Errorf("dot %d has %d vertices, want %d", i, len(verts), r.perDot)
		}
		for _, v := range verts {
			positions = append(positions, v.X, v.Y, v.Z)
		}
	}
	r.attrs = make([]float32, n*2)

	gl.GenVertexArrays(1, &r.dotVAO)
	gl.BindVertexArray(r.dotVAO)

	gl.GenBuffers(1, &r.dotPosVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dotPosVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.dotAttrVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dotAttrVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.attrs)*4, gl.Ptr(r.attrs), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, 2*4, gl.PtrOffset(4))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.dotVertices = int32(n)
	logger.Info("dots uploaded",
		zap.Int("dots", f.Len()),
		zap.Int("vertices", n),
	)
	return nil
}

// Render draws one frame: opaque dots first, then the translucent sphere.
func (r *Renderer) Render(ctx *globe.Context) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := ctx.Camera.ViewMatrix()
	proj := ctx.Camera.Projection(ctx.Aspect())

	if r.dotVertices > 0 {
		r.streamAttributes(ctx.Materials())

		r.dotProg.Use()
		gl.UniformMatrix4fv(r.dotProg.Uniform("uView"), 1, false, view.Ptr())
		gl.UniformMatrix4fv(r.dotProg.Uniform("uProjection"), 1, false, proj.Ptr())
		gl.BindVertexArray(r.dotVAO)
		setCulling(material.DotSide)
		gl.DrawArrays(gl.TRIANGLES, 0, r.dotVertices)
	}

	if r.sphereIndices > 0 {
		p := r.sphereProg
		p.Use()
		gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
		gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
		gl.Uniform3f(p.Uniform("uColor"), globe.BaseColor[0], globe.BaseColor[1], globe.BaseColor[2])
		gl.Uniform1f(p.Uniform("uOpacity"), globe.BaseOpacity)
		light := ctx.Light
		gl.Uniform3f(p.Uniform("uSkyColor"), light.Sky[0], light.Sky[1], light.Sky[2])
		gl.Uniform3f(p.Uniform("uGroundColor"), light.Ground[0], light.Ground[1], light.Ground[2])
		gl.Uniform1f(p.Uniform("uLightIntensity"), light.Intensity)

		gl.BindVertexArray(r.sphereVAO)
		setCulling(material.SphereSide)
		gl.DrawElements(gl.TRIANGLES, r.sphereIndices, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// culls reports whether back faces are dropped for side.
func culls(side material.Side) bool {
	return side != material.DoubleSide
}

func setCulling(side material.Side) {
	if culls(side) {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

func (r *Renderer) streamAttributes(mats []*material.Animated) {
	if len(mats)*r.perDot*2 != len(r.attrs) {
		return
	}
	k := 0
	for _, m := range mats {
		for v := 0; v < r.perDot; v++ {
			r.attrs[k] = m.Time
			r.attrs[k+1] = m.Extrusion
			k += 2
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dotAttrVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.attrs)*4, gl.Ptr(r.attrs))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) uploadSphere(m *sphere.Mesh) {
	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.BindVertexArray(r.sphereVAO)

	gl.GenBuffers(2, &r.sphereVBO[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*4, gl.Ptr(m.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.sphereEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.sphereIndices = int32(len(m.Indices))
	logger.Debug("base sphere uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", len(m.Indices)),
	)
}

func (r *Renderer) deleteDots() {
	if r.dotVAO == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &r.dotVAO)
	gl.DeleteBuffers(1, &r.dotPosVBO)
	gl.DeleteBuffers(1, &r.dotAttrVBO)
	r.dotVAO, r.dotPosVBO, r.dotAttrVBO = 0, 0, 0
	r.dotVertices = 0
	r.attrs = nil
}
