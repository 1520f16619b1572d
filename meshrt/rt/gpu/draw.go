package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group slots shared by every pipeline that draws meshes.
const (
	MaterialGroup = 0
	CameraGroup   = 1
)

// RenderPass is the subset of *wgpu.RenderPassEncoder the draw functions need.
type RenderPass interface {
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset uint64, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset uint64, size uint64)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	DrawIndexed(indexCount uint32, instanceCount uint32, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

var _ RenderPass = (*wgpu.RenderPassEncoder)(nil)

// InstanceRange is the half-open span [Start, End) of instance indices.
type InstanceRange struct {
	Start uint32
	End   uint32
}

var SingleInstance = InstanceRange{Start: 0, End: 1}

func (r InstanceRange) Count() uint32 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func DrawMesh(pass RenderPass, mesh *Mesh, material *Material, camera *wgpu.BindGroup) {
	DrawMeshInstanced(pass, mesh, material, SingleInstance, camera)
}

func DrawMeshInstanced(pass RenderPass, mesh *Mesh, material *Material, instances InstanceRange, camera *wgpu.BindGroup) {
	pass.SetVertexBuffer(0, mesh.VertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(mesh.IndexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)

	pass.SetBindGroup(MaterialGroup, material.BindGroup, nil)
	pass.SetBindGroup(CameraGroup, camera, nil)

	pass.DrawIndexed(mesh.ElementCount, instances.Count(), 0, 0, instances.Start)
}

func DrawModel(pass RenderPass, model *Model, camera *wgpu.BindGroup) {
	DrawModelInstanced(pass, model, SingleInstance, camera)
}

// DrawModelInstanced draws meshes in storage order, one call per mesh.
func DrawModelInstanced(pass RenderPass, model *Model, instances InstanceRange, camera *wgpu.BindGroup) {
	for _, mesh := range model.Meshes {
		material := model.Materials[mesh.Material]
		DrawMeshInstanced(pass, mesh, material, instances, camera)
	}
}

// Drawer exposes the draw functions as methods on a wrapped pass.
type Drawer struct {
	Pass RenderPass
}

func (d Drawer) DrawMesh(mesh *Mesh, material *Material, camera *wgpu.BindGroup) {
	DrawMesh(d.Pass, mesh, material, camera)
}

func (d Drawer) DrawMeshInstanced(mesh *Mesh, material *Material, instances InstanceRange, camera *wgpu.BindGroup) {
	DrawMeshInstanced(d.Pass, mesh, material, instances, camera)
}

func (d Drawer) DrawModel(model *Model, camera *wgpu.BindGroup) {
	DrawModel(d.Pass, model, camera)
}

func (d Drawer) DrawModelInstanced(model *Model, instances InstanceRange, camera *wgpu.BindGroup) {
	DrawModelInstanced(d.Pass, model, instances, camera)
}
