// Package config handles globe configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all globe settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Mask        MaskConfig        `yaml:"mask"`
	Globe       GlobeConfig       `yaml:"globe"`
	Interaction InteractionConfig `yaml:"interaction"`
	Camera      CameraConfig      `yaml:"camera"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	MaxPixelRatio int    `yaml:"max_pixel_ratio"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// MaskConfig describes the land/ocean mask image.
type MaskConfig struct {
	Path      string `yaml:"path"`
	Threshold uint8  `yaml:"threshold"` // r, g and b must all exceed it
	Resample  bool   `yaml:"resample"`  // scale non 361x181 images onto the degree grid
}

// GlobeConfig holds dot field geometry and twinkle settings.
type GlobeConfig struct {
	Radius              float64 `yaml:"radius"`
	BaseRadius          float64 `yaml:"base_radius"`
	BaseSegments        int     `yaml:"base_segments"`
	DotDensity          float64 `yaml:"dot_density"` // dots per unit of ring circumference
	DotSize             float64 `yaml:"dot_size"`
	DotSegments         int     `yaml:"dot_segments"`
	VisibilityTolerance float64 `yaml:"visibility_tolerance"` // degrees
	TwinkleStep         float32 `yaml:"twinkle_step"`         // time added per frame
	Seed                uint64  `yaml:"seed"`                 // 0 picks a random seed
}

// InteractionConfig holds press/release animation settings.
type InteractionConfig struct {
	ExtrusionTarget   float32       `yaml:"extrusion_target"`
	RiseDuration      time.Duration `yaml:"rise_duration"`
	FallDuration      time.Duration `yaml:"fall_duration"`
	PressConfirmDelay time.Duration `yaml:"press_confirm_delay"`
}

// CameraConfig holds projection and orbit settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	Damping         float32 `yaml:"damping"`
	PitchRange      float32 `yaml:"pitch_range"` // radians either side of the equator
	WideDistance    float32 `yaml:"wide_distance"`
	NarrowDistance  float32 `yaml:"narrow_distance"`
	NarrowWidth     int     `yaml:"narrow_width"` // viewports this wide or less use NarrowDistance
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			ScreenshotDir: "screenshots",
		},
		Mask: MaskConfig{
			Path:      "world_alpha_mini.jpg",
			Threshold: 100,
			Resample:  true,
		},
		Globe: GlobeConfig{
			Radius:              20,
			BaseRadius:          19.5,
			BaseSegments:        35,
			DotDensity:          2.5,
			DotSize:             0.1,
			DotSegments:         5,
			VisibilityTolerance: 0.5,
			TwinkleStep:         0.03,
		},
		Interaction: InteractionConfig{
			ExtrusionTarget:   1.07,
			RiseDuration:      500 * time.Millisecond,
			FallDuration:      150 * time.Millisecond,
			PressConfirmDelay: 500 * time.Millisecond,
		},
		Camera: CameraConfig{
			FOV:             30,
			Near:            1,
			Far:             1000,
			AutoRotateSpeed: 1.2,
			Damping:         0.05,
			PitchRange:      0.5,
			WideDistance:    100,
			NarrowDistance:  140,
			NarrowWidth:     700,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the globe cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Globe.Radius > 0, "globe.radius must be positive, got %v", c.Globe.Radius)
	check(c.Globe.BaseRadius > 0, "globe.base_radius must be positive, got %v", c.Globe.BaseRadius)
	check(c.Globe.BaseSegments >= 3, "globe.base_segments must be at least 3, got %d", c.Globe.BaseSegments)
	check(c.Globe.DotDensity > 0, "globe.dot_density must be positive, got %v", c.Globe.DotDensity)
	check(c.Globe.DotSize > 0, "globe.dot_size must be positive, got %v", c.Globe.DotSize)
	check(c.Globe.DotSegments >= 3, "globe.dot_segments must be at least 3, got %d", c.Globe.DotSegments)
	check(c.Globe.VisibilityTolerance > 0, "globe.visibility_tolerance must be positive, got %v", c.Globe.VisibilityTolerance)
	check(c.Interaction.ExtrusionTarget >= 1, "interaction.extrusion_target must be at least 1, got %v", c.Interaction.ExtrusionTarget)
	check(c.Interaction.RiseDuration > 0, "interaction.rise_duration must be positive, got %v", c.Interaction.RiseDuration)
	check(c.Interaction.FallDuration > 0, "interaction.fall_duration must be positive, got %v", c.Interaction.FallDuration)
	check(c.Interaction.PressConfirmDelay >= 0, "interaction.press_confirm_delay must not be negative, got %v", c.Interaction.PressConfirmDelay)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "camera near/far must satisfy 0 < near < far, got %v/%v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.Damping > 0 && c.Camera.Damping <= 1, "camera.damping must be in (0, 1], got %v", c.Camera.Damping)

	return errors.Join(errs...)
}
