package globe

import (
	"math/rand/v2"

	"github.com/Faultbox/dotglobe/internal/config"
	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/interaction"
	"github.com/Faultbox/dotglobe/internal/globe/landmask"
)

// SamplerFor returns the mask sampler described by cfg.
func SamplerFor(cfg *config.Config) landmask.Sampler {
	return landmask.Sampler{
		Threshold: cfg.Mask.Threshold,
		Resample:  cfg.Mask.Resample,
	}
}

// DotConfig returns the dot field settings described by cfg.
func DotConfig(cfg *config.Config) dotfield.Config {
	return dotfield.Config{
		Radius:      cfg.Globe.Radius,
		Density:     cfg.Globe.DotDensity,
		DotSize:     float32(cfg.Globe.DotSize),
		DotSegments: cfg.Globe.DotSegments,
	}
}

// InteractionConfig returns the press/release settings described by cfg.
func InteractionConfig(cfg *config.Config) interaction.Config {
	ic := interaction.DefaultConfig()
	ic.ExtrusionTarget = cfg.Interaction.ExtrusionTarget
	ic.RiseDuration = cfg.Interaction.RiseDuration
	ic.FallDuration = cfg.Interaction.FallDuration
	ic.ConfirmDelay = cfg.Interaction.PressConfirmDelay
	return ic
}

// LoopConfigFor returns the per-frame settings described by cfg.
func LoopConfigFor(cfg *config.Config) LoopConfig {
	return LoopConfig{
		TwinkleStep: cfg.Globe.TwinkleStep,
		Tolerance:   cfg.Globe.VisibilityTolerance,
	}
}

// NewRand returns the phase source for seed. Zero means unseeded.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
