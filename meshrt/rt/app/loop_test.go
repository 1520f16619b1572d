package app

import (
	"errors"
	"testing"

	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/stretchr/testify/assert"
)

type fakeDriver struct {
	inputs   []Event
	handled  bool
	resizes  [][2]int
	w, h     int
	updates  int
	renders  int
	renderFn func() error
}

func (d *fakeDriver) Input(ev Event) bool {
	d.inputs = append(d.inputs, ev)
	return d.handled
}

func (d *fakeDriver) Resize(w, h int) {
	d.resizes = append(d.resizes, [2]int{w, h})
	if w > 0 && h > 0 {
		d.w, d.h = w, h
	}
}

func (d *fakeDriver) Size() (int, int) { return d.w, d.h }

func (d *fakeDriver) Update() { d.updates++ }

func (d *fakeDriver) Render() error {
	d.renders++
	if d.renderFn != nil {
		return d.renderFn()
	}
	return nil
}

func TestLoopStartsIdle(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	l := NewLoop(d, nil)

	assert.Equal(t, Idle, l.State())
	assert.True(t, l.Step())
	assert.Zero(t, d.renders)

	l.Dispatch(RedrawRequestedEvent{})
	assert.True(t, l.Step())
	assert.Equal(t, Rendering, l.State())
	assert.Equal(t, 1, d.updates)
	assert.Equal(t, 1, d.renders)
}

func TestLoopResizeThenRender(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	l := NewLoop(d, nil)
	l.Dispatch(RedrawRequestedEvent{})
	l.Step()

	l.Dispatch(ResizedEvent{Width: 800, Height: 600})
	assert.Equal(t, Rendering, l.State(), "events only request transitions")
	l.Step()
	assert.Equal(t, [][2]int{{800, 600}}, d.resizes)
	assert.Equal(t, Rendering, l.State())
	assert.Equal(t, 1, d.renders, "no frame during the resize step")

	l.Step()
	assert.Equal(t, 2, d.renders)
}

func TestLoopMinimizedStaysIdle(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	l := NewLoop(d, nil)

	l.Dispatch(ResizedEvent{Width: 0, Height: 0})
	l.Step()
	assert.Equal(t, Idle, l.State())

	l.Dispatch(RedrawRequestedEvent{})
	l.Step()
	assert.Equal(t, Idle, l.State())
	assert.Zero(t, d.renders)

	l.Dispatch(ResizedEvent{Width: 320, Height: 200})
	l.Step()
	assert.Equal(t, Rendering, l.State())
}

func TestLoopReconfiguresOnLostSurface(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	d.renderFn = func() error { return ErrSurfaceLost }
	l := NewLoop(d, nil)
	l.Dispatch(RedrawRequestedEvent{})

	assert.True(t, l.Step())
	assert.Equal(t, [][2]int{{640, 480}}, d.resizes)
	assert.Equal(t, Rendering, l.State())
}

func TestLoopClosesOnOutOfMemory(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	d.renderFn = func() error { return ErrOutOfMemory }
	l := NewLoop(d, nil)
	l.Dispatch(RedrawRequestedEvent{})

	assert.False(t, l.Step())
	assert.Equal(t, Closing, l.State())
}

func TestLoopClosesOnDeviceLost(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	d.renderFn = func() error {
		return classifySurfaceError(errors.New("wgpu.(*Surface).GetCurrentTexture(): surface status device-lost"))
	}
	l := NewLoop(d, nil)
	l.Dispatch(RedrawRequestedEvent{})

	assert.False(t, l.Step())
	assert.Equal(t, Closing, l.State())
	assert.Empty(t, d.resizes, "a lost device is not reconfigured")
}

func TestLoopTimeoutKeepsRendering(t *testing.T) {
	d := &fakeDriver{w: 640, h: 480}
	d.renderFn = func() error { return ErrTimeout }
	l := NewLoop(d, nil)
	l.Dispatch(RedrawRequestedEvent{})

	assert.True(t, l.Step())
	assert.True(t, l.Step())
	assert.Equal(t, 2, d.renders)
	assert.Empty(t, d.resizes)
}

func TestLoopCloseRequests(t *testing.T) {
	d := &fakeDriver{}
	l := NewLoop(d, nil)
	l.Dispatch(CloseRequestedEvent{})
	l.Dispatch(ResizedEvent{Width: 10, Height: 10})
	assert.False(t, l.Step())
	assert.Equal(t, Closing, l.State())
	assert.Empty(t, d.resizes)

	d = &fakeDriver{}
	l = NewLoop(d, nil)
	l.Dispatch(KeyEvent{Key: core.KeyEscape, Pressed: true})
	assert.False(t, l.Step())
	assert.Len(t, d.inputs, 1, "escape goes to the driver first")
}

func TestLoopHandledEscapeDoesNotClose(t *testing.T) {
	d := &fakeDriver{handled: true}
	l := NewLoop(d, nil)
	l.Dispatch(KeyEvent{Key: core.KeyEscape, Pressed: true})
	assert.True(t, l.Step())
	assert.Equal(t, Idle, l.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Resizing", Resizing.String())
	assert.Equal(t, "State(9)", State(9).String())
}
