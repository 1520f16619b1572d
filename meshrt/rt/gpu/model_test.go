package gpu

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelRejectsBadMaterialIndex(t *testing.T) {
	materials := []*Material{{Name: "only"}}

	_, err := NewModel([]*Mesh{{Name: "ok", Material: 0}, {Name: "bad", Material: 1}}, materials)
	require.ErrorIs(t, err, ErrMaterialIndex)
	assert.Contains(t, err.Error(), `"bad"`)

	_, err = NewModel([]*Mesh{{Name: "neg", Material: -1}}, materials)
	assert.ErrorIs(t, err, ErrMaterialIndex)
}

func TestNewModelAssignsID(t *testing.T) {
	a, err := NewModel(nil, nil)
	require.NoError(t, err)
	b, err := NewModel(nil, nil)
	require.NoError(t, err)

	_, err = uuid.Parse(a.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestModelReleaseIdempotent(t *testing.T) {
	model, err := NewModel(
		[]*Mesh{{Name: "m"}},
		[]*Material{{Name: "mat", Diffuse: &Texture{}}},
	)
	require.NoError(t, err)

	mat := model.Materials[0]
	model.Release()
	assert.Nil(t, model.Meshes)
	assert.Nil(t, model.Materials)
	assert.Nil(t, mat.Diffuse)

	assert.NotPanics(t, model.Release)
}
