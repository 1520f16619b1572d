package gpu

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/gekko3d/brushrt/meshrt/rt/shaders"
)

const BrushStyleSize = 16

// BrushStyle tints the brush ring. Color is straight alpha RGBA.
type BrushStyle struct {
	Color [4]float32
}

func (s BrushStyle) Bytes() []byte {
	buf := make([]byte, BrushStyleSize)
	for i, v := range s.Color {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// BrushOverlay is the subset of a render pass the brush needs.
type BrushOverlay interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

var _ BrushOverlay = (*wgpu.RenderPassEncoder)(nil)

// BrushPass composites the brush over the scene. It owns its pipeline,
// layout and uniforms and never touches the depth buffer.
type BrushPass struct {
	Pipeline  *wgpu.RenderPipeline
	Layout    *wgpu.BindGroupLayout
	BindGroup *wgpu.BindGroup
	Uniform   *UniformBuffer
	Style     *UniformBuffer

	pipelineLayout *wgpu.PipelineLayout
	shader         *wgpu.ShaderModule
}

func NewBrushPass(device *wgpu.Device, format wgpu.TextureFormat, brush core.BrushUniform, style BrushStyle) (*BrushPass, error) {
	p := &BrushPass{}
	var err error

	p.shader, err = device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "BrushShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.BrushWGSL},
	})
	if err != nil {
		return nil, err
	}

	p.Layout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "BrushBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: core.BrushUniformSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: BrushStyleSize,
				},
			},
		},
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	if p.Uniform, err = NewUniformBuffer(device, "Brush Buffer", brush.Bytes()); err != nil {
		p.Release()
		return nil, err
	}
	if p.Style, err = NewUniformBuffer(device, "Brush Style Buffer", style.Bytes()); err != nil {
		p.Release()
		return nil, err
	}

	p.BindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "BrushBG",
		Layout: p.Layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: p.Uniform.Buffer, Size: core.BrushUniformSize},
			{Binding: 1, Buffer: p.Style.Buffer, Size: BrushStyleSize},
		},
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	p.pipelineLayout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "BrushPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{p.Layout},
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	p.Pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "BrushPipeline",
		Layout: p.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: format,
					// Premultiplied alpha: the fragment shader scales rgb by a.
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

// Sync copies pending brush changes into the uniform mirror.
func (p *BrushPass) Sync(brush *core.BrushState) {
	if data, ok := brush.TakeDirty(); ok {
		p.Uniform.Set(data)
	}
}

func (p *BrushPass) SetStyle(style BrushStyle) {
	p.Style.Set(style.Bytes())
}

// Flush uploads whichever brush uniforms changed since the last flush.
func (p *BrushPass) Flush(write WriteFunc) int {
	n := 0
	if p.Uniform.Flush(write) {
		n++
	}
	if p.Style.Flush(write) {
		n++
	}
	return n
}

// Draw issues the fullscreen triangle the fragment shader masks to the ring.
func (p *BrushPass) Draw(pass BrushOverlay) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.Draw(3, 1, 0, 0)
}

func (p *BrushPass) Release() {
	if p.Pipeline != nil {
		p.Pipeline.Release()
		p.Pipeline = nil
	}
	if p.pipelineLayout != nil {
		p.pipelineLayout.Release()
		p.pipelineLayout = nil
	}
	if p.BindGroup != nil {
		p.BindGroup.Release()
		p.BindGroup = nil
	}
	if p.Style != nil {
		p.Style.Release()
		p.Style = nil
	}
	if p.Uniform != nil {
		p.Uniform.Release()
		p.Uniform = nil
	}
	if p.Layout != nil {
		p.Layout.Release()
		p.Layout = nil
	}
	if p.shader != nil {
		p.shader.Release()
		p.shader = nil
	}
}
