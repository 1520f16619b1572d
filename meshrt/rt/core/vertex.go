package core

// Vertex matches the WGSL VertexInput of the mesh shader.
// Layout: position @0, tex_coords @12, normal @20, stride 32.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
	Normal    [3]float32
}
