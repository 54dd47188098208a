package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/dotglobe/internal/engine/camera"
	"github.com/Faultbox/dotglobe/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestIntersectSphere(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		wantT float32
		hit   bool
	}{
		{"head on", Ray{Origin: math.Vec3{Z: 100}, Direction: math.Vec3{Z: -1}}, 80, true},
		{"from inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, 20, true},
		{"pointing away", Ray{Origin: math.Vec3{Z: 100}, Direction: math.Vec3{Z: 1}}, 0, false},
		{"passes beside", Ray{Origin: math.Vec3{X: 30, Z: 100}, Direction: math.Vec3{Z: -1}}, 0, false},
		{"grazing", Ray{Origin: math.Vec3{X: 20, Z: 100}, Direction: math.Vec3{Z: -1}}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectSphere(math.Vec3{}, 20)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && !near(got, tt.wantT, 1e-3) {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestScreenToRayThroughCenter(t *testing.T) {
	cam := camera.NewOrbitCamera()
	cam.Yaw = 0.7
	cam.Pitch = 0.2

	p := NewSpherePicker(cam, 19.5)
	p.SetViewport(800, 600)

	r, ok := p.Ray(400, 300)
	if !ok {
		t.Fatal("Ray failed with a valid viewport")
	}

	// The center ray starts near the camera and points at the origin.
	toOrigin := cam.Position().Scale(-1).Normalize()
	if d := r.Direction.Dot(toOrigin); !near(d, 1, 1e-4) {
		t.Errorf("direction %v not aimed at origin (dot %v)", r.Direction, d)
	}
	if l := r.Direction.Length(); !near(l, 1, 1e-4) {
		t.Errorf("|direction| = %v, want 1", l)
	}
	// Near plane is one unit in front of the camera.
	if d := r.Origin.Sub(cam.Position()).Length(); !near(d, cam.Near, 1e-2) {
		t.Errorf("origin %v from camera, want %v", d, cam.Near)
	}
}

func TestSpherePickerHit(t *testing.T) {
	cam := camera.NewOrbitCamera()
	p := NewSpherePicker(cam, 19.5)
	p.SetViewport(800, 600)

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"center", 400, 300, true},
		{"inside upper", 400, 120, true},
		{"above silhouette", 400, 20, false},
		{"corner", 0, 0, false},
		{"far right", 790, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Hit(tt.x, tt.y); got != tt.want {
				t.Errorf("Hit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSpherePickerWithoutViewport(t *testing.T) {
	p := NewSpherePicker(camera.NewOrbitCamera(), 19.5)
	if p.Hit(0, 0) {
		t.Error("hit reported before the viewport was set")
	}
}
