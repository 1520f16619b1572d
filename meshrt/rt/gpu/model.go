package gpu

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrMaterialIndex = errors.New("mesh material index out of range")

// Model owns its meshes and materials; nothing is shared between models.
type Model struct {
	ID        string
	Meshes    []*Mesh
	Materials []*Material
}

// NewModel checks that every mesh refers to an existing material.
func NewModel(meshes []*Mesh, materials []*Material) (*Model, error) {
	for _, m := range meshes {
		if m.Material < 0 || m.Material >= len(materials) {
			return nil, fmt.Errorf("%w: mesh %q uses %d of %d", ErrMaterialIndex, m.Name, m.Material, len(materials))
		}
	}
	return &Model{
		ID:        uuid.NewString(),
		Meshes:    meshes,
		Materials: materials,
	}, nil
}

// Release frees every GPU object the model owns exactly once.
func (m *Model) Release() {
	for _, mesh := range m.Meshes {
		mesh.Release()
	}
	m.Meshes = nil

	for _, mat := range m.Materials {
		mat.Release()
	}
	m.Materials = nil
}
