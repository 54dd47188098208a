package picking

import (
	"github.com/Faultbox/dotglobe/pkg/math"
)

// View supplies the matrices the picker unprojects through.
type View interface {
	ViewMatrix() math.Mat4
	Projection(aspect float32) math.Mat4
}

// SpherePicker hit-tests window positions against a sphere at the origin.
type SpherePicker struct {
	View   View
	Radius float32

	width, height int
}

// NewSpherePicker creates a picker for a sphere of the given radius.
func NewSpherePicker(view View, radius float32) *SpherePicker {
	return &SpherePicker{View: view, Radius: radius}
}

// SetViewport sets the window size screen positions are relative to.
func (p *SpherePicker) SetViewport(width, height int) {
	p.width = width
	p.height = height
}

// Ray returns the world-space ray through window position (x, y).
func (p *SpherePicker) Ray(x, y float32) (Ray, bool) {
	if p.width <= 0 || p.height <= 0 || p.View == nil {
		return Ray{}, false
	}
	aspect := float32(p.width) / float32(p.height)
	// Both matrices have analytic inverses; (P*V)^-1 = V^-1 * P^-1.
	inv := p.View.ViewMatrix().InverseRigid().Mul(p.View.Projection(aspect).InversePerspective())
	return ScreenToRay(x, y, float32(p.width), float32(p.height), inv), true
}

// Hit reports whether the ray through (x, y) intersects the sphere.
func (p *SpherePicker) Hit(x, y float32) bool {
	r, ok := p.Ray(x, y)
	if !ok {
		return false
	}
	_, hit := r.IntersectSphere(math.Vec3{}, p.Radius)
	return hit
}
