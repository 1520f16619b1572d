package app

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTexture struct {
	released int
}

func (c *countingTexture) Release() { c.released++ }

func TestAcquireReleasesUnpresentedTexture(t *testing.T) {
	stale := &countingTexture{}
	calls := 0
	p := &surfacePresenter{
		acquire: func() (*wgpu.Texture, error) {
			calls++
			return nil, errors.New("wgpu.(*Surface).GetCurrentTexture(): surface status timeout")
		},
		current: stale,
	}

	_, err := p.Acquire()
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, stale.released)
	assert.Nil(t, p.current)

	_, err = p.Acquire()
	require.Error(t, err)
	assert.Equal(t, 1, stale.released, "released once")
}

func TestDiscardDropsCurrentTexture(t *testing.T) {
	tex := &countingTexture{}
	p := &surfacePresenter{current: tex}

	p.Discard()
	p.Discard()
	assert.Equal(t, 1, tex.released)
	assert.Nil(t, p.current)

	assert.NotPanics(t, p.Release)
}
