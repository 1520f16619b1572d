package gpu

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
)

// InstanceBuffer holds per-instance model matrices bound at vertex slot 1.
type InstanceBuffer struct {
	Buffer *wgpu.Buffer
	Count  uint32
}

func NewInstanceBuffer(device *wgpu.Device, instances []core.InstanceRaw) (*InstanceBuffer, error) {
	if len(instances) == 0 {
		return nil, errors.New("instance buffer: no instances")
	}
	buf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Instance Buffer",
		Contents: wgpu.ToBytes(instances),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}
	return &InstanceBuffer{Buffer: buf, Count: uint32(len(instances))}, nil
}

func (b *InstanceBuffer) Range() InstanceRange {
	return InstanceRange{Start: 0, End: b.Count}
}

func (b *InstanceBuffer) Bind(pass RenderPass) {
	pass.SetVertexBuffer(1, b.Buffer, 0, wgpu.WholeSize)
}

func (b *InstanceBuffer) Release() {
	if b.Buffer != nil {
		b.Buffer.Release()
		b.Buffer = nil
	}
}
