package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writeLog struct {
	writes [][]byte
	bufs   []*wgpu.Buffer
}

func (w *writeLog) write(buf *wgpu.Buffer, data []byte) {
	w.bufs = append(w.bufs, buf)
	w.writes = append(w.writes, append([]byte(nil), data...))
}

func TestUniformBufferFlushOnlyWhenDirty(t *testing.T) {
	u := &UniformBuffer{Buffer: &wgpu.Buffer{}, Size: 4}
	log := &writeLog{}

	assert.False(t, u.Flush(log.write))
	assert.Empty(t, log.writes)

	u.Set([]byte{1, 2, 3, 4})
	assert.True(t, u.Dirty())
	assert.True(t, u.Flush(log.write))
	assert.False(t, u.Dirty())
	assert.False(t, u.Flush(log.write))

	require.Len(t, log.writes, 1)
	assert.Equal(t, []byte{1, 2, 3, 4}, log.writes[0])
	assert.Same(t, u.Buffer, log.bufs[0])
}

func TestUniformBufferLastSetWins(t *testing.T) {
	u := &UniformBuffer{Buffer: &wgpu.Buffer{}, Size: 2}
	log := &writeLog{}

	u.Set([]byte{1, 1})
	u.Set([]byte{2, 2})
	u.Flush(log.write)

	require.Len(t, log.writes, 1)
	assert.Equal(t, []byte{2, 2}, log.writes[0])
}

func TestBrushPassSyncAndFlush(t *testing.T) {
	p := &BrushPass{
		Uniform: &UniformBuffer{Buffer: &wgpu.Buffer{}, Size: core.BrushUniformSize},
		Style:   &UniformBuffer{Buffer: &wgpu.Buffer{}, Size: BrushStyleSize},
	}
	brush := core.NewBrushState()
	log := &writeLog{}

	// New brush state starts dirty so the first frame uploads it.
	p.Sync(brush)
	assert.Equal(t, 1, p.Flush(log.write))
	assert.False(t, brush.Dirty())

	p.Sync(brush)
	assert.Equal(t, 0, p.Flush(log.write))

	brush.UpdateRadius(3)
	brush.UpdatePosition(mgl32.Vec3{1, 2, 3})
	p.Sync(brush)
	p.SetStyle(BrushStyle{Color: [4]float32{1, 0, 0, 0.5}})
	assert.Equal(t, 2, p.Flush(log.write))

	require.Len(t, log.writes, 3)
	data := log.writes[1]
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(data[0:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(data[12:])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(log.writes[2][12:])))
}

type overlayPass struct {
	pipeline *wgpu.RenderPipeline
	group    *wgpu.BindGroup
	slot     uint32
	vertices uint32
	draws    int
}

func (o *overlayPass) SetPipeline(p *wgpu.RenderPipeline) { o.pipeline = p }

func (o *overlayPass) SetBindGroup(i uint32, g *wgpu.BindGroup, _ []uint32) {
	o.slot, o.group = i, g
}

func (o *overlayPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	o.vertices = vertexCount
	o.draws++
}

func TestBrushPassDraw(t *testing.T) {
	p := &BrushPass{Pipeline: &wgpu.RenderPipeline{}, BindGroup: &wgpu.BindGroup{}}
	pass := &overlayPass{}

	p.Draw(pass)

	assert.Same(t, p.Pipeline, pass.pipeline)
	assert.Same(t, p.BindGroup, pass.group)
	assert.Equal(t, uint32(0), pass.slot)
	assert.Equal(t, uint32(3), pass.vertices)
	assert.Equal(t, 1, pass.draws)
}
