// Package game wires the window, renderer and globe into the main loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/dotglobe/internal/config"
	"github.com/Faultbox/dotglobe/internal/engine/debug"
	"github.com/Faultbox/dotglobe/internal/engine/input"
	"github.com/Faultbox/dotglobe/internal/engine/renderer"
	"github.com/Faultbox/dotglobe/internal/engine/window"
	"github.com/Faultbox/dotglobe/internal/globe"
	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/interaction"
	"github.com/Faultbox/dotglobe/internal/globe/landmask"
	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/logger"
)

// Game is the running globe application.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	ctx  *globe.Context
	loop *globe.Loop
}

// New opens the window, starts loading the land mask and builds the scene.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing globe",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("mask", cfg.Mask.Path),
	)

	g := &Game{cfg: cfg}

	// Start decoding while the window and GL come up.
	masks := landmask.LoadAsync(cfg.Mask.Path, globe.SamplerFor(cfg))

	var err error
	g.window, err = window.New(window.Config{
		Title:      windowTitle(0),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HighDPI:    cfg.Graphics.MaxPixelRatio > 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.ctx = globe.NewContext(cfg)
	g.ctx.Resize(g.window.GetSize())

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh}, g.ctx.Base)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ctrl := interaction.New(globe.InteractionConfig(cfg), g.ctx.Picker, g.ctx, cursorSink{g.window}, nil)
	gen := dotfield.NewGenerator(globe.DotConfig(cfg), material.NewFactory(), globe.NewRand(cfg.Globe.Seed))

	g.loop = globe.NewLoop(g.ctx, ctrl, gen, masks, g.renderer, globe.LoopConfigFor(cfg))

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "dotglobe")

	logger.Info("globe initialized")
	return g, nil
}

// Run drives the main loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	titled := false

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		if g.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			g.running = false
		}
		capture := g.input.IsKeyPressed(sdl.SCANCODE_F12)

		for _, ev := range g.input.Events() {
			if ev.Type == input.EventWindowResize {
				g.loop.HandleEvent(globe.Event{Kind: globe.EventResize, Width: ev.Width, Height: ev.Height})
				g.renderer.Resize(g.window.DrawableSize())
				continue
			}
			for _, ge := range translate(ev) {
				g.loop.HandleEvent(ge)
			}
		}

		g.loop.Tick(dt)

		if !titled && g.loop.Ready() {
			g.window.SetTitle(windowTitle(g.ctx.Field.Len()))
			titled = true
		}

		if capture {
			pixels, w, h := g.renderer.ReadPixels()
			if _, err := g.shots.CaptureFromPixels(pixels, w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Bool("dots", g.loop.Ready()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up resources.
func (g *Game) Close() {
	logger.Info("closing globe")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// windowTitle shows the dot count once the field exists.
func windowTitle(dots int) string {
	if dots == 0 {
		return "Dot Globe"
	}
	return fmt.Sprintf("Dot Globe (%d dots)", dots)
}

// translate maps mouse input to globe events. A motion with the primary
// button held is both a pointer move and a camera drag.
func translate(ev input.Event) []globe.Event {
	pointer := func(kind interaction.EventKind) globe.Event {
		return globe.Event{
			Kind:    globe.EventPointer,
			Pointer: interaction.Event{Kind: kind, X: float32(ev.MouseX), Y: float32(ev.MouseY)},
		}
	}

	switch ev.Type {
	case input.EventMouseMove:
		out := []globe.Event{pointer(interaction.EventPointerMove)}
		if ev.Held && (ev.DX != 0 || ev.DY != 0) {
			out = append(out, globe.Event{Kind: globe.EventDrag, DX: float32(ev.DX), DY: float32(ev.DY)})
		}
		return out
	case input.EventMouseDown:
		return []globe.Event{pointer(interaction.EventPointerDown)}
	case input.EventMouseUp:
		return []globe.Event{pointer(interaction.EventPointerUp)}
	}
	return nil
}
