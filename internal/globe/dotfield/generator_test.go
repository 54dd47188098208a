package dotfield

import (
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/dotglobe/internal/globe/landmask"
	"github.com/Faultbox/dotglobe/internal/globe/material"
)

type allLand struct{}

func (allLand) IsLand(lon, lat float64) bool { return true }

type noLand struct{}

func (noLand) IsLand(lon, lat float64) bool { return false }

// hemisphere is land north of the equator only.
type hemisphere struct{}

func (hemisphere) IsLand(lon, lat float64) bool { return lat > 0 }

func solidMask(v byte) *landmask.Mask {
	pix := make([]byte, landmask.GridWidth*landmask.GridHeight*4)
	for i := range pix {
		pix[i] = v
	}
	return landmask.NewSampler().Sample(pix)
}

func newGen(seed uint64) *Generator {
	return NewGenerator(DefaultConfig(), material.NewFactory(), rand.New(rand.NewPCG(seed, seed)))
}

func expectedTotal(cfg Config) int {
	n := 0
	for i := 0; i < Rings; i++ {
		n += cfg.RingCount(RingLatitude(i))
	}
	return n
}

func TestRingSamplesShrinkTowardPoles(t *testing.T) {
	cfg := DefaultConfig()

	eq := cfg.RingSamples(0)
	if want := 20 * 2 * gomath.Pi * 2.5; gomath.Abs(eq-want) > 1e-9 {
		t.Errorf("equator samples = %v, want %v", eq, want)
	}
	if cfg.RingCount(0) != 315 {
		t.Errorf("equator count = %d, want 315", cfg.RingCount(0))
	}

	prev := eq
	for lat := 1; lat <= 90; lat++ {
		s := cfg.RingSamples(lat)
		if s >= prev {
			t.Fatalf("lat %d samples %v not below lat %d samples %v", lat, s, lat-1, prev)
		}
		if s != cfg.RingSamples(-lat) {
			t.Fatalf("lat %d not symmetric with %d", lat, -lat)
		}
		prev = s
	}

	if cfg.RingCount(90) != 1 || cfg.RingCount(-90) != 1 {
		t.Errorf("pole counts = %d/%d, want a single sample each", cfg.RingCount(90), cfg.RingCount(-90))
	}
}

func TestRingCountMatchesLoop(t *testing.T) {
	cfg := DefaultConfig()
	for lat := -90; lat <= 90; lat++ {
		s := cfg.RingSamples(lat)
		n := 0
		for x := 0; float64(x) < s; x++ {
			n++
		}
		if n != cfg.RingCount(lat) {
			t.Fatalf("lat %d: loop runs %d times, RingCount = %d", lat, n, cfg.RingCount(lat))
		}
	}
}

func TestRingsSkipSouthPole(t *testing.T) {
	if RingLatitude(0) != 90 {
		t.Errorf("first ring at lat %d, want 90", RingLatitude(0))
	}
	if RingLatitude(Rings-1) != -89 {
		t.Errorf("last ring at lat %d, want -89", RingLatitude(Rings-1))
	}

	f := newGen(6).Generate(allLand{})
	for _, d := range f.Dots {
		if d.Lat <= -90 {
			t.Fatalf("dot placed at the south pole: %+v", d.Lat)
		}
	}
	if f.RingDots(Rings) != 0 {
		t.Errorf("ring past the end reports %d dots", f.RingDots(Rings))
	}
}

func TestGenerateAllLand(t *testing.T) {
	f := newGen(1).Generate(allLand{})
	cfg := DefaultConfig()

	if f.Len() != expectedTotal(cfg) {
		t.Errorf("dots = %d, want %d", f.Len(), expectedTotal(cfg))
	}
	for i := 0; i < Rings; i++ {
		if got, want := f.RingDots(i), cfg.RingCount(RingLatitude(i)); got != want {
			t.Fatalf("ring %d: %d dots, want %d", i, got, want)
		}
	}
}

func TestGenerateAllWhiteMask(t *testing.T) {
	idx := landmask.NewIndex(solidMask(255), landmask.DefaultTolerance)
	f := newGen(2).Generate(idx)

	if want := expectedTotal(DefaultConfig()); f.Len() != want {
		t.Errorf("dots = %d, want every sample (%d)", f.Len(), want)
	}
}

func TestGenerateAllBlackMask(t *testing.T) {
	idx := landmask.NewIndex(solidMask(0), landmask.DefaultTolerance)
	f := newGen(3).Generate(idx)

	if f.Len() != 0 || len(f.Materials()) != 0 {
		t.Errorf("dots = %d materials = %d, want none", f.Len(), len(f.Materials()))
	}
}

func TestGenerateNoLand(t *testing.T) {
	if f := newGen(4).Generate(noLand{}); f.Len() != 0 {
		t.Errorf("dots = %d, want 0", f.Len())
	}
}

func TestGenerateDeterministicPlacement(t *testing.T) {
	a := newGen(10).Generate(hemisphere{})
	b := newGen(99).Generate(hemisphere{})

	if a.Len() != b.Len() {
		t.Fatalf("dot counts differ across seeds: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Dots {
		if a.Dots[i].Position != b.Dots[i].Position {
			t.Fatalf("dot %d moved: %v vs %v", i, a.Dots[i].Position, b.Dots[i].Position)
		}
	}
	for i := 0; i < Rings; i++ {
		if a.RingDots(i) != b.RingDots(i) {
			t.Fatalf("ring %d counts differ", i)
		}
	}
	// Southern rings and the equator are empty.
	for i := 90; i < Rings; i++ {
		if a.RingDots(i) != 0 {
			t.Fatalf("ring %d (lat %d) has dots", i, RingLatitude(i))
		}
	}
}

func TestGenerateDotsOnSphere(t *testing.T) {
	f := newGen(5).Generate(hemisphere{})

	for i, d := range f.Dots {
		if l := d.Position.Length(); gomath.Abs(float64(l)-20) > 1e-3 {
			t.Fatalf("dot %d at radius %v, want 20", i, l)
		}
		if d.Lat != float64(RingLatitude(d.Ring)) {
			t.Fatalf("dot %d latitude %v does not match ring %d", i, d.Lat, d.Ring)
		}
		if d.Lon < -180 || d.Lon >= 180 {
			t.Fatalf("dot %d longitude %v out of range", i, d.Lon)
		}
		if len(d.Disc.Vertices) != 15 {
			t.Fatalf("dot %d disc has %d vertices", i, len(d.Disc.Vertices))
		}
	}
}

func TestMaterialsViewAliasesDots(t *testing.T) {
	f := newGen(6).Generate(hemisphere{})
	mats := f.Materials()

	if len(mats) != f.Len() {
		t.Fatalf("materials = %d, dots = %d", len(mats), f.Len())
	}
	seen := make(map[*material.Animated]bool, len(mats))
	for i, m := range mats {
		if m != f.Dots[i].Material {
			t.Fatalf("materials[%d] is not dot %d's material", i, i)
		}
		if seen[m] {
			t.Fatalf("material %d shared between dots", i)
		}
		seen[m] = true
	}

	mats[0].Twinkle(5)
	if f.Dots[0].Material.Time != mats[0].Time {
		t.Error("view and owner disagree after mutation")
	}
}

func TestPhaseSeededByRing(t *testing.T) {
	f := newGen(7).Generate(allLand{})

	for _, d := range f.Dots {
		// phase = ring * sin(u), u in [0, 1)
		max := float32(float64(d.Ring) * gomath.Sin(1))
		if d.Material.Time < 0 || d.Material.Time > max+1e-5 {
			t.Fatalf("ring %d phase %v outside [0, %v]", d.Ring, d.Material.Time, max)
		}
		if d.Material.Extrusion != material.Baseline {
			t.Fatalf("dot starts extruded: %v", d.Material.Extrusion)
		}
	}
}

func TestNilField(t *testing.T) {
	var f *Field
	if f.Len() != 0 || f.Materials() != nil || f.RingDots(3) != 0 {
		t.Error("nil field should be empty")
	}
}
