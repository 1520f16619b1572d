package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// NewMaterialLayout creates the group 0 layout: diffuse texture at binding 0,
// its sampler at binding 1.
func NewMaterialLayout(device *wgpu.Device) (*wgpu.BindGroupLayout, error) {
	return device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "MaterialBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
}

type Material struct {
	Name      string
	Diffuse   *Texture
	BindGroup *wgpu.BindGroup
}

// NewMaterial takes ownership of tex.
func NewMaterial(device *wgpu.Device, layout *wgpu.BindGroupLayout, name string, tex *Texture) (*Material, error) {
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name + " BG",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tex.View},
			{Binding: 1, Sampler: tex.Sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", name, err)
	}
	return &Material{
		Name:      name,
		Diffuse:   tex,
		BindGroup: bg,
	}, nil
}

func (m *Material) Release() {
	if m.BindGroup != nil {
		m.BindGroup.Release()
		m.BindGroup = nil
	}
	if m.Diffuse != nil {
		m.Diffuse.Release()
		m.Diffuse = nil
	}
}
