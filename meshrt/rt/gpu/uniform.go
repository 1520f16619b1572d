package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
)

// WriteFunc uploads data to the start of buf, normally queue.WriteBuffer.
type WriteFunc func(buf *wgpu.Buffer, data []byte)

// UniformBuffer mirrors a small uniform block. Set marks it dirty; Flush
// uploads it at most once until the next Set.
type UniformBuffer struct {
	Buffer *wgpu.Buffer
	Size   uint64

	data  []byte
	dirty bool
}

func NewUniformBuffer(device *wgpu.Device, label string, initial []byte) (*UniformBuffer, error) {
	buf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: initial,
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("uniform %q: %w", label, err)
	}
	u := &UniformBuffer{Buffer: buf, Size: uint64(len(initial))}
	u.data = append(u.data, initial...)
	return u, nil
}

func (u *UniformBuffer) Set(data []byte) {
	u.data = append(u.data[:0], data...)
	u.dirty = true
}

func (u *UniformBuffer) Dirty() bool {
	return u.dirty
}

// Flush writes pending data and reports whether a write happened.
func (u *UniformBuffer) Flush(write WriteFunc) bool {
	if !u.dirty {
		return false
	}
	write(u.Buffer, u.data)
	u.dirty = false
	return true
}

func (u *UniformBuffer) Release() {
	if u.Buffer != nil {
		u.Buffer.Release()
		u.Buffer = nil
	}
}

// CameraBinding owns the camera uniform and the group 1 bind group.
type CameraBinding struct {
	Layout    *wgpu.BindGroupLayout
	Uniform   *UniformBuffer
	BindGroup *wgpu.BindGroup
}

func NewCameraBinding(device *wgpu.Device, initial core.CameraUniform) (*CameraBinding, error) {
	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "CameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: false,
					MinBindingSize:   core.CameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	uniform, err := NewUniformBuffer(device, "Camera Buffer", initial.Bytes())
	if err != nil {
		layout.Release()
		return nil, err
	}

	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "CameraBG",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: uniform.Buffer, Size: core.CameraUniformSize},
		},
	})
	if err != nil {
		uniform.Release()
		layout.Release()
		return nil, err
	}

	return &CameraBinding{Layout: layout, Uniform: uniform, BindGroup: bg}, nil
}

func (c *CameraBinding) Release() {
	if c.BindGroup != nil {
		c.BindGroup.Release()
		c.BindGroup = nil
	}
	if c.Uniform != nil {
		c.Uniform.Release()
		c.Uniform = nil
	}
	if c.Layout != nil {
		c.Layout.Release()
		c.Layout = nil
	}
}
