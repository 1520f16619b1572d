package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
)

// Mesh owns one vertex buffer and one 32-bit index buffer.
type Mesh struct {
	Name         string
	VertexBuffer *wgpu.Buffer
	IndexBuffer  *wgpu.Buffer
	ElementCount uint32
	Material     int // index into Model.Materials
}

func NewMesh(device *wgpu.Device, name string, vertices []core.Vertex, indices []uint32, material int) (*Mesh, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("mesh %q: empty geometry", name)
	}

	vertexBuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("mesh %q: vertex buffer: %w", name, err)
	}
	indexBuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vertexBuf.Release()
		return nil, fmt.Errorf("mesh %q: index buffer: %w", name, err)
	}

	return &Mesh{
		Name:         name,
		VertexBuffer: vertexBuf,
		IndexBuffer:  indexBuf,
		ElementCount: uint32(len(indices)),
		Material:     material,
	}, nil
}

// Release frees both buffers. Safe to call more than once.
func (m *Mesh) Release() {
	if m.VertexBuffer != nil {
		m.VertexBuffer.Release()
		m.VertexBuffer = nil
	}
	if m.IndexBuffer != nil {
		m.IndexBuffer.Release()
		m.IndexBuffer = nil
	}
}
