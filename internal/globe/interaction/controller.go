package interaction

import (
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/logger"
)

// Config holds press/release animation settings.
type Config struct {
	ExtrusionTarget float32
	RiseDuration    time.Duration
	FallDuration    time.Duration
	ConfirmDelay    time.Duration // minimum press length before a release is honoured
	Easing          ease.TweenFunc
}

// DefaultConfig rises to 1.07 over half a second and drops back in 150ms.
func DefaultConfig() Config {
	return Config{
		ExtrusionTarget: 1.07,
		RiseDuration:    500 * time.Millisecond,
		FallDuration:    150 * time.Millisecond,
		ConfirmDelay:    500 * time.Millisecond,
		Easing:          ease.OutQuad,
	}
}

// Controller is the pointer state machine. It is not safe for concurrent
// use; the host calls HandleEvent and Update from its frame loop.
type Controller struct {
	cfg     Config
	picker  Picker
	targets Targets
	cursor  CursorSink
	clock   Clock

	state    PointerState
	released bool // pointer came up before the press was confirmed

	timerArmed bool
	confirmAt  time.Time

	current Cursor
}

// New creates a controller. A nil clock uses the wall clock and a nil cursor
// sink discards cursor changes.
func New(cfg Config, picker Picker, targets Targets, cursor CursorSink, clock Clock) *Controller {
	if cfg.Easing == nil {
		cfg.Easing = ease.OutQuad
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		cfg:     cfg,
		picker:  picker,
		targets: targets,
		cursor:  cursor,
		clock:   clock,
	}
}

// HandleEvent is the single entry point for pointer input.
func (c *Controller) HandleEvent(ev Event) {
	c.hover(ev.X, ev.Y)

	switch ev.Kind {
	case EventPointerMove:
		if c.state.Pressed && !c.state.Dragging {
			c.state.Dragging = true
			logger.Debug("globe drag started")
		}

	case EventPointerDown:
		if !c.state.Hovering {
			return
		}
		if c.state.Pressed && !c.released {
			return
		}
		c.press()

	case EventPointerUp:
		if !c.state.Pressed {
			return
		}
		if !c.state.PressConfirmed {
			c.released = true
			logger.Debug("release deferred until press is confirmed")
			return
		}
		c.release()
	}
}

// Update fires the press-confirmation timer once its deadline has passed.
// A release that arrived early is carried out here, but only after every
// material has finished rising.
func (c *Controller) Update() {
	if c.timerArmed {
		if c.clock.Now().Before(c.confirmAt) {
			return
		}
		c.timerArmed = false
		c.state.PressConfirmed = true
	}

	if c.released && c.state.PressConfirmed && !c.rising() {
		c.release()
	}
}

// State returns the coarse state.
func (c *Controller) State() State {
	switch {
	case c.state.Dragging:
		return StateDragging
	case c.state.Pressed:
		return StatePressed
	case c.state.Hovering:
		return StateHovering
	default:
		return StateIdle
	}
}

// Pointer returns a copy of the pointer flags.
func (c *Controller) Pointer() PointerState {
	return c.state
}

// Cursor returns the cursor last requested.
func (c *Controller) Cursor() Cursor {
	return c.current
}

// hover re-casts the pointer ray and updates the cursor unless a press owns it.
func (c *Controller) hover(x, y float32) {
	c.state.Hovering = c.picker != nil && c.picker.Hit(x, y)

	if c.state.Pressed {
		return
	}
	if c.state.Hovering {
		c.setCursor(CursorPointer)
	} else {
		c.setCursor(CursorDefault)
	}
}

func (c *Controller) press() {
	mats := c.materials()
	for _, m := range mats {
		m.Extrude(c.cfg.ExtrusionTarget, c.cfg.RiseDuration, c.cfg.Easing)
	}

	c.state.Pressed = true
	c.state.PressConfirmed = false
	c.state.Dragging = false
	c.released = false

	c.timerArmed = true
	c.confirmAt = c.clock.Now().Add(c.cfg.ConfirmDelay)

	c.setCursor(CursorGrabbing)
	logger.Debug("globe pressed",
		zap.Int("materials", len(mats)),
		zap.Float32("target", c.cfg.ExtrusionTarget),
	)
}

func (c *Controller) release() {
	for _, m := range c.materials() {
		m.Extrude(material.Baseline, c.cfg.FallDuration, c.cfg.Easing)
	}

	c.state.Pressed = false
	c.state.PressConfirmed = false
	c.state.Dragging = false
	c.released = false

	if c.state.Hovering {
		c.setCursor(CursorPointer)
	} else {
		c.setCursor(CursorDefault)
	}
	logger.Debug("globe released", zap.Stringer("state", c.State()))
}

// rising reports whether any material is still heading to the press target.
func (c *Controller) rising() bool {
	for _, m := range c.materials() {
		if m.Animating() && m.Target() == c.cfg.ExtrusionTarget {
			return true
		}
	}
	return false
}

func (c *Controller) materials() []*material.Animated {
	if c.targets == nil {
		return nil
	}
	return c.targets.Materials()
}

func (c *Controller) setCursor(cur Cursor) {
	if cur == c.current {
		return
	}
	c.current = cur
	if c.cursor != nil {
		c.cursor.SetCursor(cur)
	}
}
