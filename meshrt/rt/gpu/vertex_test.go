package gpu

import (
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatSize(f wgpu.VertexFormat) uint64 {
	switch f {
	case wgpu.VertexFormatFloat32x2:
		return 8
	case wgpu.VertexFormatFloat32x3:
		return 12
	case wgpu.VertexFormatFloat32x4:
		return 16
	}
	return 0
}

func TestVertexLayoutMatchesStruct(t *testing.T) {
	var v core.Vertex
	layout := VertexLayout()

	assert.Equal(t, uint64(32), layout.ArrayStride)
	assert.Equal(t, uint64(unsafe.Sizeof(v)), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)

	require.Len(t, layout.Attributes, 3)
	want := []struct {
		offset uintptr
		loc    uint32
		format wgpu.VertexFormat
	}{
		{unsafe.Offsetof(v.Position), 0, wgpu.VertexFormatFloat32x3},
		{unsafe.Offsetof(v.TexCoords), 1, wgpu.VertexFormatFloat32x2},
		{unsafe.Offsetof(v.Normal), 2, wgpu.VertexFormatFloat32x3},
	}
	for i, w := range want {
		a := layout.Attributes[i]
		assert.Equal(t, uint64(w.offset), a.Offset, "attribute %d", i)
		assert.Equal(t, w.loc, a.ShaderLocation, "attribute %d", i)
		assert.Equal(t, w.format, a.Format, "attribute %d", i)
	}

	last := layout.Attributes[2]
	assert.Equal(t, layout.ArrayStride, last.Offset+formatSize(last.Format))
}

func TestInstanceLayoutCoversMatrix(t *testing.T) {
	layout := InstanceLayout()
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	assert.Equal(t, uint64(64), layout.ArrayStride)

	var end uint64
	for i, a := range layout.Attributes {
		assert.Equal(t, uint32(5+i), a.ShaderLocation)
		assert.Equal(t, end, a.Offset)
		end += formatSize(a.Format)
	}
	assert.Equal(t, layout.ArrayStride, end)
}
