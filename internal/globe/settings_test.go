package globe

import (
	"testing"
	"time"

	"github.com/Faultbox/dotglobe/internal/config"
)

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Globe.DotDensity = 1.5
	cfg.Globe.TwinkleStep = 0.05
	cfg.Mask.Threshold = 42
	cfg.Interaction.PressConfirmDelay = 300 * time.Millisecond

	if d := DotConfig(cfg); d.Density != 1.5 || d.Radius != 20 || d.DotSegments != 5 {
		t.Errorf("DotConfig = %+v", d)
	}
	if s := SamplerFor(cfg); s.Threshold != 42 || !s.Resample {
		t.Errorf("SamplerFor = %+v", s)
	}
	ic := InteractionConfig(cfg)
	if ic.ConfirmDelay != 300*time.Millisecond || ic.ExtrusionTarget != 1.07 || ic.Easing == nil {
		t.Errorf("InteractionConfig = %+v", ic)
	}
	if lc := LoopConfigFor(cfg); lc.TwinkleStep != 0.05 || lc.Tolerance != 0.5 {
		t.Errorf("LoopConfigFor = %+v", lc)
	}
}

func TestNewRand(t *testing.T) {
	if NewRand(0) != nil {
		t.Error("seed 0 should leave seeding to the generator")
	}
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 5; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("same seed produced different streams")
		}
	}
}

func TestNewContextFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics.Width = 640
	cfg.Graphics.Height = 480
	cfg.Camera.PitchRange = 0.3

	ctx := NewContext(cfg)
	if ctx.Camera.Distance != 140 {
		t.Errorf("distance = %v at width 640, want 140", ctx.Camera.Distance)
	}
	if ctx.Camera.MinPitch != -0.3 || ctx.Camera.MaxPitch != 0.3 {
		t.Errorf("pitch range = [%v, %v]", ctx.Camera.MinPitch, ctx.Camera.MaxPitch)
	}
	if ctx.Base == nil || ctx.Base.VertexCount() != 36*36 {
		t.Errorf("base sphere vertices = %d, want 36x36", ctx.Base.VertexCount())
	}
	if ctx.Materials() != nil {
		t.Error("materials before the field exists")
	}
}
