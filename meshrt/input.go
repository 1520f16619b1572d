package main

import (
	"github.com/gekko3d/brushrt/meshrt/rt/core"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func translateKey(key glfw.Key) core.Key {
	switch key {
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyEscape:
		return core.KeyEscape
	}
	return core.KeyUnknown
}

// toFramebuffer scales window coordinates to framebuffer pixels, which
// differ on high-DPI displays.
func toFramebuffer(x, y float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW <= 0 || winH <= 0 {
		return x, y
	}
	return x * float64(fbW) / float64(winW), y * float64(fbH) / float64(winH)
}
