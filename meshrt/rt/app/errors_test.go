package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gekko3d/brushrt"
	"github.com/stretchr/testify/assert"
)

func TestClassifySurfaceError(t *testing.T) {
	assert.NoError(t, classifySurfaceError(nil))

	status := func(s string) error {
		return errors.New("wgpu.(*Surface).GetCurrentTexture(): surface status " + s)
	}
	assert.ErrorIs(t, classifySurfaceError(status("out-of-memory")), ErrOutOfMemory)
	assert.ErrorIs(t, classifySurfaceError(status("outdated")), ErrSurfaceOutdated)
	assert.ErrorIs(t, classifySurfaceError(status("lost")), ErrSurfaceLost)
	assert.ErrorIs(t, classifySurfaceError(status("timeout")), ErrTimeout)
	assert.ErrorIs(t, classifySurfaceError(errors.New("Out of memory")), ErrOutOfMemory)

	deviceLost := classifySurfaceError(status("device-lost"))
	assert.ErrorIs(t, deviceLost, ErrDeviceLost)
	assert.NotErrorIs(t, deviceLost, ErrSurfaceLost)

	wrapped := fmt.Errorf("frame: %w", ErrSurfaceLost)
	assert.Same(t, wrapped, classifySurfaceError(wrapped))

	other := errors.New("validation failed")
	got := classifySurfaceError(other)
	assert.ErrorIs(t, got, other)
	for _, known := range []error{ErrSurfaceLost, ErrSurfaceOutdated, ErrOutOfMemory, ErrTimeout, ErrDeviceLost} {
		assert.NotErrorIs(t, got, known)
	}
}

func TestHandleRenderError(t *testing.T) {
	log := brushrt.NewNopLogger()
	cases := []struct {
		err  error
		want FrameAction
	}{
		{nil, ActionContinue},
		{ErrTimeout, ActionContinue},
		{fmt.Errorf("x: %w", ErrSurfaceLost), ActionReconfigure},
		{ErrSurfaceOutdated, ActionReconfigure},
		{fmt.Errorf("%w: adapter", ErrOutOfMemory), ActionExit},
		{classifySurfaceError(errors.New("surface status out-of-memory")), ActionExit},
		{classifySurfaceError(errors.New("surface status device-lost")), ActionExit},
		{errors.New("anything else"), ActionContinue},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HandleRenderError(c.err, log), "%v", c.err)
	}
	assert.Equal(t, "reconfigure", ActionReconfigure.String())
}
