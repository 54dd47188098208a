package globe

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/interaction"
	"github.com/Faultbox/dotglobe/internal/globe/landmask"
	"github.com/Faultbox/dotglobe/internal/logger"
)

// Renderer draws a context. Upload is called once, when the field appears.
type Renderer interface {
	Upload(f *dotfield.Field) error
	Render(ctx *Context)
}

// EventKind identifies a loop event.
type EventKind int

const (
	EventPointer EventKind = iota
	EventResize
	EventDrag
)

// Event is input the loop routes to the context, camera or controller.
type Event struct {
	Kind    EventKind
	Pointer interaction.Event
	Width   int     // EventResize
	Height  int     // EventResize
	DX, DY  float32 // EventDrag, in pixels
}

// LoopConfig holds per-frame settings.
type LoopConfig struct {
	TwinkleStep float32
	Tolerance   float64 // land visibility tolerance in degrees
}

// Loop advances the scene once per frame.
type Loop struct {
	ctx      *Context
	ctrl     *interaction.Controller
	gen      *dotfield.Generator
	renderer Renderer
	cfg      LoopConfig

	masks <-chan *landmask.Mask
}

// NewLoop creates a loop. masks delivers the land mask once; a closed channel
// leaves the globe without dots. renderer may be nil.
func NewLoop(ctx *Context, ctrl *interaction.Controller, gen *dotfield.Generator,
	masks <-chan *landmask.Mask, renderer Renderer, cfg LoopConfig) *Loop {
	return &Loop{
		ctx:      ctx,
		ctrl:     ctrl,
		gen:      gen,
		renderer: renderer,
		cfg:      cfg,
		masks:    masks,
	}
}

// HandleEvent routes one event.
func (l *Loop) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventResize:
		l.ctx.Resize(ev.Width, ev.Height)
		logger.Debug("viewport resized",
			zap.Int("width", ev.Width),
			zap.Int("height", ev.Height),
			zap.Float32("distance", l.ctx.Camera.Distance),
		)
	case EventDrag:
		l.ctx.Camera.HandleDrag(ev.DX, ev.DY, l.ctx.Height)
	case EventPointer:
		if l.ctrl != nil {
			l.ctrl.HandleEvent(ev.Pointer)
		}
	}
}

// Tick runs one frame: pick up the mask if it has arrived, animate the dots,
// fire the press timer, move the camera, draw.
func (l *Loop) Tick(dt time.Duration) {
	l.receiveMask()

	for _, m := range l.ctx.Materials() {
		m.Twinkle(l.cfg.TwinkleStep)
		m.Advance(dt)
	}

	if l.ctrl != nil {
		l.ctrl.Update()
	}
	l.ctx.Camera.Update(dt)

	if l.renderer != nil {
		l.renderer.Render(l.ctx)
	}
}

// Ready reports whether the dot field exists.
func (l *Loop) Ready() bool {
	return l.ctx.Field != nil
}

func (l *Loop) receiveMask() {
	if l.masks == nil {
		return
	}

	var (
		mask *landmask.Mask
		ok   bool
	)
	select {
	case mask, ok = <-l.masks:
	default:
		return
	}
	l.masks = nil

	if !ok || mask == nil {
		logger.Warn("land mask unavailable, globe has no dots")
		return
	}

	field := l.gen.Generate(landmask.NewIndex(mask, l.cfg.Tolerance))
	l.ctx.Field = field

	if l.renderer != nil {
		if err := l.renderer.Upload(field); err != nil {
			logger.Error("dot upload failed", zap.Error(err))
		}
	}
}
