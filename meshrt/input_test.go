package main

import (
	"testing"

	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyW, translateKey(glfw.KeyW))
	assert.Equal(t, core.KeyRight, translateKey(glfw.KeyRight))
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeySpace))
}

func TestToFramebuffer(t *testing.T) {
	x, y := toFramebuffer(100, 50, 640, 480, 1280, 960)
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.0, y)

	x, y = toFramebuffer(10, 20, 0, 0, 0, 0)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}
