package game

import (
	"github.com/Faultbox/dotglobe/internal/engine/window"
	"github.com/Faultbox/dotglobe/internal/globe/interaction"
)

// CursorShape maps a controller cursor onto a system cursor.
func CursorShape(c interaction.Cursor) window.Cursor {
	switch c {
	case interaction.CursorPointer:
		return window.CursorHand
	case interaction.CursorGrabbing:
		return window.CursorMove
	default:
		return window.CursorArrow
	}
}

type cursorSink struct {
	w *window.Window
}

func (s cursorSink) SetCursor(c interaction.Cursor) {
	s.w.SetCursor(CursorShape(c))
}
