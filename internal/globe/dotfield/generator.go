// Package dotfield lays out the globe's land dots: one ring per integer
// latitude, with the number of samples per ring proportional to the ring's
// circumference so spacing stays even from the equator to the poles.
package dotfield

import (
	gomath "math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/globe/sphere"
	"github.com/Faultbox/dotglobe/internal/logger"
	"github.com/Faultbox/dotglobe/pkg/math"
)

// LandIndex answers whether a coordinate is on land.
type LandIndex interface {
	IsLand(lon, lat float64) bool
}

// Config controls ring density and dot shape.
type Config struct {
	Radius      float64 // sphere the dots sit on
	Density     float64 // samples per unit of ring circumference
	DotSize     float32
	DotSegments int
}

// DefaultConfig matches the stock globe.
func DefaultConfig() Config {
	return Config{
		Radius:      20,
		Density:     2.5,
		DotSize:     0.1,
		DotSegments: 5,
	}
}

// Rings is the number of latitude rings, +90 down to -89. The south pole
// itself gets no ring.
const Rings = 180

// RingLatitude returns the latitude of ring i (ring 0 is the north pole).
func RingLatitude(i int) int {
	return 90 - i
}

// RingSamples returns the fractional sample count for a ring: its
// circumference times the density.
func (c Config) RingSamples(lat int) float64 {
	radius := gomath.Cos(gomath.Abs(float64(lat))*gomath.Pi/180) * c.Radius
	return radius * gomath.Pi * 2 * c.Density
}

// RingCount returns how many longitudes a ring samples: every integer x with
// x < RingSamples(lat). The poles keep a single sample.
func (c Config) RingCount(lat int) int {
	s := c.RingSamples(lat)
	if s <= 0 {
		return 0
	}
	return int(gomath.Ceil(s))
}

// Dot is one land dot. The dot is the sole owner of its material.
type Dot struct {
	Lon, Lat float64
	Ring     int
	Position math.Vec3
	Disc     sphere.Disc
	Material *material.Animated
}

// Field is the complete, static dot set.
type Field struct {
	Dots []Dot

	materials []*material.Animated
	rings     [Rings]int
}

// Materials returns a view over every dot's material in dot order, for
// per-frame iteration. The dots remain the owners.
func (f *Field) Materials() []*material.Animated {
	if f == nil {
		return nil
	}
	return f.materials
}

// Len returns the number of dots.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Dots)
}

// RingDots returns how many dots ring i produced.
func (f *Field) RingDots(i int) int {
	if f == nil || i < 0 || i >= Rings {
		return 0
	}
	return f.rings[i]
}

// Generator builds a Field from a land index.
type Generator struct {
	cfg       Config
	projector sphere.Projector
	factory   *material.Factory
	rng       *rand.Rand
}

// NewGenerator returns a generator. rng drives the per-dot twinkle phase and
// nothing else; a nil rng draws a random seed.
func NewGenerator(cfg Config, factory *material.Factory, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if factory == nil {
		factory = material.NewFactory()
	}
	return &Generator{
		cfg:       cfg,
		projector: sphere.Projector{Radius: cfg.Radius},
		factory:   factory,
		rng:       rng,
	}
}

// Generate walks every ring from the north pole south and places a dot at
// each land sample. Placement depends only on the index and the config;
// only the material phases consume randomness.
func (g *Generator) Generate(index LandIndex) *Field {
	start := time.Now()
	f := &Field{}

	for i := 0; i < Rings; i++ {
		lat := RingLatitude(i)
		samples := g.cfg.RingSamples(lat)

		for x := 0; float64(x) < samples; x++ {
			lon := -180 + float64(x)*360/samples
			if !index.IsLand(lon, float64(lat)) {
				continue
			}

			pos := g.projector.Point(lon, float64(lat))
			phase := float32(float64(i) * gomath.Sin(g.rng.Float64()))
			mat := g.factory.Clone(phase)

			f.Dots = append(f.Dots, Dot{
				Lon:      lon,
				Lat:      float64(lat),
				Ring:     i,
				Position: pos,
				Disc:     sphere.NewDisc(pos, g.cfg.DotSize, g.cfg.DotSegments),
				Material: mat,
			})
			f.materials = append(f.materials, mat)
			f.rings[i]++
		}
	}

	logger.Info("dot field generated",
		zap.Int("dots", len(f.Dots)),
		zap.Float64("density", g.cfg.Density),
		zap.Duration("took", time.Since(start)),
	)
	return f
}
