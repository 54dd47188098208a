// Package interaction implements the globe's pointer state machine: hover
// detection, press-triggered extrusion and the debounced release.
package interaction

import (
	"time"

	"github.com/Faultbox/dotglobe/internal/globe/material"
)

// Cursor is the pointer style the host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// State is the controller's coarse state.
type State int

const (
	StateIdle State = iota
	StateHovering
	StatePressed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// EventKind identifies a pointer event.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "down"
	case EventPointerUp:
		return "up"
	default:
		return "move"
	}
}

// Event is a pointer event in window coordinates.
type Event struct {
	Kind EventKind
	X, Y float32
}

// PointerState holds the flags the state machine is built from.
type PointerState struct {
	Hovering       bool
	Pressed        bool
	PressConfirmed bool // the press has lasted at least the confirmation delay
	Dragging       bool
}

// Picker reports whether a ray cast through window position (x, y) hits the
// base sphere.
type Picker interface {
	Hit(x, y float32) bool
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(x, y float32) bool

// Hit calls f.
func (f PickerFunc) Hit(x, y float32) bool { return f(x, y) }

// CursorSink receives cursor changes.
type CursorSink interface {
	SetCursor(Cursor)
}

// Targets exposes the materials a press animates. The slice is a view; the
// controller never keeps it between calls.
type Targets interface {
	Materials() []*material.Animated
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
