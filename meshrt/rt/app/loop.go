package app

import (
	"fmt"

	"github.com/gekko3d/brushrt"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
)

type State int

const (
	Idle State = iota
	Resizing
	Rendering
	Closing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Resizing:
		return "Resizing"
	case Rendering:
		return "Rendering"
	case Closing:
		return "Closing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Driver is what the loop drives; *App implements it.
type Driver interface {
	Input(ev Event) bool
	Resize(w, h int)
	Size() (int, int)
	Update()
	Render() error
}

var _ Driver = (*App)(nil)

// Loop turns window events into driver calls. Events only request state
// changes; Step applies them between frames so the driver is never reentered.
type Loop struct {
	driver Driver
	logger brushrt.Logger

	state         State
	nextState     State
	transitioning bool

	pendingW, pendingH int
	minimized          bool
}

func NewLoop(driver Driver, logger brushrt.Logger) *Loop {
	if logger == nil {
		logger = brushrt.NewNopLogger()
	}
	return &Loop{driver: driver, logger: logger, state: Idle}
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) changeState(s State) {
	if l.state == Closing || (l.transitioning && l.nextState == Closing) {
		return
	}
	l.nextState = s
	l.transitioning = true
}

func (l *Loop) executeChangeState() {
	l.transitioning = false
	if l.nextState == l.state {
		return
	}
	l.logger.Debugf("loop: %s -> %s", l.state, l.nextState)
	l.state = l.nextState
}

// Dispatch routes one event. Input the driver does not consume may still
// close the loop: a close request or an unhandled Escape press.
func (l *Loop) Dispatch(ev Event) {
	switch e := ev.(type) {
	case CloseRequestedEvent:
		l.changeState(Closing)
	case ResizedEvent:
		l.pendingW, l.pendingH = e.Width, e.Height
		l.changeState(Resizing)
	case RedrawRequestedEvent:
		if l.state == Idle && !l.transitioning && !l.minimized {
			l.changeState(Rendering)
		}
	default:
		if l.driver.Input(ev) {
			return
		}
		if k, ok := ev.(KeyEvent); ok && k.Key == core.KeyEscape && k.Pressed {
			l.changeState(Closing)
		}
	}
}

// Step applies a pending transition and runs the current state once. It
// returns false once the loop is Closing.
func (l *Loop) Step() bool {
	if l.transitioning {
		l.executeChangeState()
	}

	switch l.state {
	case Resizing:
		l.driver.Resize(l.pendingW, l.pendingH)
		l.minimized = l.pendingW <= 0 || l.pendingH <= 0
		if l.minimized {
			l.changeState(Idle)
		} else {
			l.changeState(Rendering)
		}
		l.executeChangeState()
	case Rendering:
		l.driver.Update()
		switch HandleRenderError(l.driver.Render(), l.logger) {
		case ActionReconfigure:
			l.driver.Resize(l.driver.Size())
		case ActionExit:
			l.changeState(Closing)
			l.executeChangeState()
		}
	}
	return l.state != Closing
}
