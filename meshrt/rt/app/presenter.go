package app

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Presenter is the swapchain side of a frame. Every Acquire must be followed
// by either Present or Discard.
type Presenter interface {
	Configure(width, height uint32)
	Acquire() (*wgpu.TextureView, error)
	Present()
	// Discard drops the acquired texture of a frame that will not be shown.
	Discard()
	Release()
}

type releaser interface {
	Release()
}

type surfacePresenter struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	config  *wgpu.SurfaceConfiguration

	acquire func() (*wgpu.Texture, error)
	current releaser
}

func newSurfacePresenter(surface *wgpu.Surface, adapter *wgpu.Adapter, device *wgpu.Device, config *wgpu.SurfaceConfiguration) *surfacePresenter {
	return &surfacePresenter{
		surface: surface,
		adapter: adapter,
		device:  device,
		config:  config,
		acquire: surface.GetCurrentTexture,
	}
}

func (p *surfacePresenter) Configure(width, height uint32) {
	p.config.Width = width
	p.config.Height = height
	p.surface.Configure(p.adapter, p.device, p.config)
}

// Acquire releases a texture left over from a frame that was neither
// presented nor discarded before asking for the next one.
func (p *surfacePresenter) Acquire() (*wgpu.TextureView, error) {
	p.Discard()
	tex, err := p.acquire()
	if err != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}
	p.current = tex
	return view, nil
}

func (p *surfacePresenter) Present() {
	p.surface.Present()
	p.Discard()
}

func (p *surfacePresenter) Discard() {
	if p.current != nil {
		p.current.Release()
		p.current = nil
	}
}

func (p *surfacePresenter) Release() {
	p.Discard()
	if p.surface != nil {
		p.surface.Release()
		p.surface = nil
	}
}
