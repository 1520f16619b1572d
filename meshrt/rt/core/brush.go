package core

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultBrushRadius = 5.0
	BrushUniformSize   = 16
)

// BrushUniform matches WGSL: struct Brush { position: vec3<f32>, radius: f32 }
type BrushUniform struct {
	Position [3]float32
	Radius   float32
}

func NewBrushUniform() BrushUniform {
	return BrushUniform{Radius: DefaultBrushRadius}
}

func (u *BrushUniform) Bytes() []byte {
	buf := make([]byte, BrushUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(u.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(u.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(u.Radius))
	return buf
}

// BrushState is the logical brush plus its GPU mirror. Every mutation marks
// the mirror dirty; the frame driver flushes it before the brush draw.
type BrushState struct {
	Position mgl32.Vec3
	Radius   float32
	Uniform  BrushUniform

	dirty bool
}

func NewBrushState() *BrushState {
	return &BrushState{
		Radius:  DefaultBrushRadius,
		Uniform: NewBrushUniform(),
		dirty:   true,
	}
}

func (b *BrushState) UpdatePosition(p mgl32.Vec3) {
	b.Position = p
	b.Uniform.Position = [3]float32{p.X(), p.Y(), p.Z()}
	b.dirty = true
}

// UpdateRadius ignores non-positive radii so the brush never disappears.
func (b *BrushState) UpdateRadius(r float32) {
	if r <= 0 {
		return
	}
	b.Radius = r
	b.Uniform.Radius = r
	b.dirty = true
}

func (b *BrushState) Dirty() bool {
	return b.dirty
}

// TakeDirty returns the uniform image when dirty and clears the flag.
func (b *BrushState) TakeDirty() ([]byte, bool) {
	if !b.dirty {
		return nil, false
	}
	b.dirty = false
	return b.Uniform.Bytes(), true
}
