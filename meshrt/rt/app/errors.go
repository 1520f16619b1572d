package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gekko3d/brushrt"
)

var (
	ErrSurfaceLost     = errors.New("surface lost")
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrOutOfMemory     = errors.New("out of memory")
	ErrTimeout         = errors.New("surface timeout")

	// ErrDeviceLost is fatal; reconfiguring the surface cannot recover it.
	ErrDeviceLost = errors.New("device lost")
)

// classifySurfaceError maps a texture acquisition failure onto the sentinel
// errors. The native layer only reports status through the message text,
// e.g. "surface status out-of-memory". device-lost is tested before lost.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrSurfaceLost, ErrSurfaceOutdated, ErrOutOfMemory, ErrTimeout, ErrDeviceLost} {
		if errors.Is(err, known) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "device-lost"), strings.Contains(msg, "device lost"):
		return fmt.Errorf("%w: %v", ErrDeviceLost, err)
	case strings.Contains(msg, "out-of-memory"), strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("acquire surface texture: %w", err)
}

type FrameAction int

const (
	ActionContinue FrameAction = iota
	// ActionReconfigure asks the caller to resize to the last known size.
	ActionReconfigure
	ActionExit
)

func (a FrameAction) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionReconfigure:
		return "reconfigure"
	case ActionExit:
		return "exit"
	}
	return fmt.Sprintf("FrameAction(%d)", int(a))
}

// HandleRenderError decides how the frame loop reacts to a Render result.
func HandleRenderError(err error, logger brushrt.Logger) FrameAction {
	switch {
	case err == nil:
		return ActionContinue
	case errors.Is(err, ErrSurfaceLost), errors.Is(err, ErrSurfaceOutdated):
		logger.Debugf("render: %v, reconfiguring surface", err)
		return ActionReconfigure
	case errors.Is(err, ErrOutOfMemory), errors.Is(err, ErrDeviceLost):
		logger.Errorf("render: %v", err)
		return ActionExit
	case errors.Is(err, ErrTimeout):
		logger.Warnf("render: %v", err)
		return ActionContinue
	default:
		logger.Errorf("render: %v", err)
		return ActionContinue
	}
}
