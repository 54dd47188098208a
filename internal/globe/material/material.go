// Package material produces the per-dot shader parameter sets and defines the
// dot shader contracts.
package material

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Baseline is the resting extrusion: dots sit exactly on the sphere.
const Baseline float32 = 1.0

// Uniforms are the two values the dot shaders read.
type Uniforms struct {
	Time      float32
	Extrusion float32
}

// Factory hands out independent copies of one template uniform set.
type Factory struct {
	template Uniforms
}

// NewFactory returns a factory whose template has Time 1 and Extrusion 1.
func NewFactory() *Factory {
	return &Factory{template: Uniforms{Time: 1, Extrusion: Baseline}}
}

// Template returns a copy of the template uniforms.
func (f *Factory) Template() Uniforms {
	return f.template
}

// Clone returns a new material carrying the template with Time replaced by
// timeSeed. The clone shares nothing with the template or other clones.
func (f *Factory) Clone(timeSeed float32) *Animated {
	u := f.template
	u.Time = timeSeed
	return &Animated{Uniforms: u}
}

// Animated is one dot's uniform state plus its in-flight extrusion
// interpolation, if any.
type Animated struct {
	Uniforms

	tween  *gween.Tween
	target float32
}

// Extrude starts interpolating Extrusion from its current value to target.
// Any interpolation already running is replaced; the new one picks up from
// wherever the old one had reached.
func (m *Animated) Extrude(target float32, duration time.Duration, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutQuad
	}
	if duration <= 0 {
		m.Extrusion = target
		m.tween = nil
		m.target = target
		return
	}
	m.tween = gween.New(m.Extrusion, target, float32(duration.Seconds()), fn)
	m.target = target
}

// Advance moves the extrusion interpolation forward by dt.
func (m *Animated) Advance(dt time.Duration) {
	if m.tween == nil {
		return
	}
	v, done := m.tween.Update(float32(dt.Seconds()))
	m.Extrusion = v
	if done {
		m.Extrusion = m.target
		m.tween = nil
	}
}

// Twinkle advances the shader clock.
func (m *Animated) Twinkle(step float32) {
	m.Time += step
}

// Animating reports whether an extrusion interpolation is in flight.
func (m *Animated) Animating() bool {
	return m.tween != nil
}

// Target returns the extrusion the material is heading to, or its current
// extrusion when idle.
func (m *Animated) Target() float32 {
	if m.tween == nil {
		return m.Extrusion
	}
	return m.target
}
