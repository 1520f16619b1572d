package core

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Pentagon returns a flat five-vertex fan in the XY plane facing +Z.
func Pentagon() ([]Vertex, []uint32) {
	n := [3]float32{0, 0, 1}
	vertices := []Vertex{
		{Position: [3]float32{-0.0868241, 0.49240386, 0}, TexCoords: [2]float32{0.4131759, 0.00759614}, Normal: n},
		{Position: [3]float32{-0.49513406, 0.06958647, 0}, TexCoords: [2]float32{0.0048659444, 0.43041354}, Normal: n},
		{Position: [3]float32{-0.21918549, -0.44939706, 0}, TexCoords: [2]float32{0.28081453, 0.949397}, Normal: n},
		{Position: [3]float32{0.35966998, -0.3473291, 0}, TexCoords: [2]float32{0.85967, 0.84732914}, Normal: n},
		{Position: [3]float32{0.44147372, 0.2347359, 0}, TexCoords: [2]float32{0.9414737, 0.2652641}, Normal: n},
	}
	indices := []uint32{
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
	}
	return vertices, indices
}

// Cube returns an axis-aligned cube of the given edge length centered on the
// origin, four vertices per face so each face carries its own normal and UVs.
func Cube(size float32) ([]Vertex, []uint32) {
	h := size / 2
	faces := []struct {
		normal mgl32.Vec3
		u, v   mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(h)
			vertices = append(vertices, Vertex{
				Position:  [3]float32{p.X(), p.Y(), p.Z()},
				TexCoords: [2]float32{(c[0] + 1) / 2, 1 - (c[1]+1)/2},
				Normal:    [3]float32{f.normal.X(), f.normal.Y(), f.normal.Z()},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// Checkerboard builds a size x size RGBA image of cells x cells squares.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells <= 0 {
		cells = 1
	}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}
