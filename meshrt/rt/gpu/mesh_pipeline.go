package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/shaders"
)

// MeshPipeline draws textured, instanced meshes with depth testing.
// Bind group 0 is the material, bind group 1 the camera.
type MeshPipeline struct {
	Pipeline *wgpu.RenderPipeline
	Layout   *wgpu.PipelineLayout
	Shader   *wgpu.ShaderModule
}

func NewMeshPipeline(device *wgpu.Device, format wgpu.TextureFormat, materialLayout, cameraLayout *wgpu.BindGroupLayout) (*MeshPipeline, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "MeshShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.MeshWGSL},
	})
	if err != nil {
		return nil, err
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "MeshPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			materialLayout,
			cameraLayout,
		},
	})
	if err != nil {
		shaderModule.Release()
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "MeshPipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				VertexLayout(),
				InstanceLayout(),
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: format,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorZero,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorZero,
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
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		layout.Release()
		shaderModule.Release()
		return nil, err
	}

	return &MeshPipeline{Pipeline: pipeline, Layout: layout, Shader: shaderModule}, nil
}

func (p *MeshPipeline) Release() {
	if p.Pipeline != nil {
		p.Pipeline.Release()
		p.Pipeline = nil
	}
	if p.Layout != nil {
		p.Layout.Release()
		p.Layout = nil
	}
	if p.Shader != nil {
		p.Shader.Release()
		p.Shader = nil
	}
}
