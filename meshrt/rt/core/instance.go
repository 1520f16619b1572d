package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Instance places one copy of a model in the world.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// InstanceRaw matches the per-instance vertex attributes at locations 5..8.
type InstanceRaw struct {
	Model mgl32.Mat4
}

func (i Instance) Raw() InstanceRaw {
	return InstanceRaw{
		Model: mgl32.Translate3D(i.Position.X(), i.Position.Y(), i.Position.Z()).Mul4(i.Rotation.Mat4()),
	}
}

// InstanceGrid lays out n*n instances on the XZ plane centered on the origin.
func InstanceGrid(n int, spacing float32) []Instance {
	if n <= 0 {
		return nil
	}
	offset := spacing * float32(n-1) / 2
	out := make([]Instance, 0, n*n)
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			pos := mgl32.Vec3{float32(x)*spacing - offset, 0, float32(z)*spacing - offset}
			rot := mgl32.QuatIdent()
			if pos.Len() > 0 {
				axis := pos.Normalize().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
				rot = mgl32.QuatRotate(mgl32.DegToRad(45), axis)
			}
			out = append(out, Instance{Position: pos, Rotation: rot})
		}
	}
	return out
}

func RawInstances(instances []Instance) []InstanceRaw {
	raw := make([]InstanceRaw, len(instances))
	for i, inst := range instances {
		raw[i] = inst.Raw()
	}
	return raw
}
