package app

import "github.com/gekko3d/brushrt/meshrt/rt/core"

// Event is a window event already translated from the windowing library.
type Event interface {
	isEvent()
}

type KeyEvent struct {
	Key     core.Key
	Pressed bool
}

// CursorMovedEvent carries the pointer position in framebuffer pixels.
type CursorMovedEvent struct {
	X, Y float64
}

type ScrollEvent struct {
	DY float64
}

type ResizedEvent struct {
	Width, Height int
}

type CloseRequestedEvent struct{}

type RedrawRequestedEvent struct{}

func (KeyEvent) isEvent()             {}
func (CursorMovedEvent) isEvent()     {}
func (ScrollEvent) isEvent()          {}
func (ResizedEvent) isEvent()         {}
func (CloseRequestedEvent) isEvent()  {}
func (RedrawRequestedEvent) isEvent() {}
