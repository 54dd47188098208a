package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got, want := x.Cross(y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		in   Vec3
		want float32
	}{
		{Vec3{3, 4, 0}, 1},
		{Vec3{-20, 0, 0}, 1},
		{Vec3{}, 0},
	}
	for _, tt := range tests {
		if l := tt.in.Normalize().Length(); !near(l, tt.want) {
			t.Errorf("Normalize(%v).Length() = %v, want %v", tt.in, l, tt.want)
		}
	}
}

func TestV3(t *testing.T) {
	v := V3(1.5, -2, 0.25)
	if v != (Vec3{1.5, -2, 0.25}) {
		t.Errorf("V3 = %v", v)
	}
	if v.Array() != [3]float32{1.5, -2, 0.25} {
		t.Errorf("Array = %v", v.Array())
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); !near(got, math.Pi) {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
