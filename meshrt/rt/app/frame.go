package app

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/gpu"
)

// ScenePass is what the mesh pass records into.
type ScenePass interface {
	gpu.RenderPass
	SetPipeline(pipeline *wgpu.RenderPipeline)
	End() error
}

// OverlayPass is what the brush pass records into.
type OverlayPass interface {
	gpu.BrushOverlay
	End() error
}

var (
	_ ScenePass   = (*wgpu.RenderPassEncoder)(nil)
	_ OverlayPass = (*wgpu.RenderPassEncoder)(nil)
)

// frameEncoder opens the passes of one frame, scene first.
type frameEncoder interface {
	BeginScene() ScenePass
	BeginOverlay() OverlayPass
}

// commandFrame records both passes into one command encoder targeting the
// acquired surface view.
type commandFrame struct {
	encoder *wgpu.CommandEncoder
	target  *wgpu.TextureView
	depth   *wgpu.TextureView
	clear   wgpu.Color
}

func (f *commandFrame) BeginScene() ScenePass {
	return f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       f.target,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: f.clear,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            f.depth,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
}

// BeginOverlay loads the scene color and has no depth attachment.
func (f *commandFrame) BeginOverlay() OverlayPass {
	return f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    f.target,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	})
}

// recordFrame uploads dirty uniforms, then records the scene and the brush
// overlay. No pass is opened until every write has been issued.
func (a *App) recordFrame(frame frameEncoder, write gpu.WriteFunc) {
	a.Stats.SetCount("uniform_writes", a.flushUniforms(write))

	scene := frame.BeginScene()
	scene.SetPipeline(a.MeshPipeline.Pipeline)
	a.Instances.Bind(scene)
	gpu.DrawModelInstanced(scene, a.Model, a.Instances.Range(), a.CameraBinding.BindGroup)
	if err := scene.End(); err != nil {
		a.Logger.Errorf("scene pass End failed: %v", err)
	}

	overlay := frame.BeginOverlay()
	a.BrushPass.Draw(overlay)
	if err := overlay.End(); err != nil {
		a.Logger.Errorf("brush pass End failed: %v", err)
	}
}
