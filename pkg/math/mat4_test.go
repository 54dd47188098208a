package math

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestMulIdentity(t *testing.T) {
	m := LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{0, 1, 0})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	got := m.TransformPoint(Vec3{1, 2, 3})

	if want := (Vec3{1, 2, -2}); !nearVec(got, want) {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestInversePerspective(t *testing.T) {
	p := Perspective(Radians(30), 16.0/9.0, 1, 1000)
	got := p.Mul(p.InversePerspective())
	want := Identity()

	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("P * P^-1 element %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestInverseRigid(t *testing.T) {
	eye := Vec3{30, 40, 100}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	inv := view.InverseRigid()

	// The camera sits at the view-space origin.
	if got := inv.TransformPoint(Vec3{}); !nearVec(got, eye) {
		t.Errorf("inverse view of origin = %v, want eye %v", got, eye)
	}

	prod := view.Mul(inv)
	id := Identity()
	for i := range prod {
		if !near(prod[i], id[i]) {
			t.Fatalf("V * V^-1 element %d = %f, want %f", i, prod[i], id[i])
		}
	}
}

func TestLookAtMapsCenterOntoNegativeZ(t *testing.T) {
	view := LookAt(Vec3{0, 0, 100}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformPoint(Vec3{})

	if !nearVec(got, Vec3{0, 0, -100}) {
		t.Errorf("center in view space = %v, want (0, 0, -100)", got)
	}
}
