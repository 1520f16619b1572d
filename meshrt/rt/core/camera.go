package core

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNearPlane  = errors.New("camera: znear must be > 0")
	ErrDepthRange = errors.New("camera: znear must be < zfar")
)

// ClipCorrection maps OpenGL clip depth [-1,1] onto the [0,1] range WebGPU expects.
// Column-major: z' = 0.5*z + 0.5*w.
var ClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Aspect float32
	FovY   float32 // degrees
	ZNear  float32
	ZFar   float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 1,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
	c.SetAspect(width, height)
	return c
}

func (c *Camera) Validate() error {
	if c.ZNear <= 0 {
		return ErrNearPlane
	}
	if c.ZNear >= c.ZFar {
		return ErrDepthRange
	}
	return nil
}

// SetAspect recomputes the aspect ratio from a surface size. Zero sizes are ignored.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.ZNear, c.ZFar)
}

func (c *Camera) BuildViewProjection() mgl32.Mat4 {
	return ClipCorrection.Mul4(c.ProjectionMatrix()).Mul4(c.ViewMatrix())
}

// CameraUniform is the GPU image of the camera: struct Camera { view_proj: mat4x4<f32> }.
type CameraUniform struct {
	ViewProj mgl32.Mat4
}

const CameraUniformSize = 64

func NewCameraUniform() CameraUniform {
	return CameraUniform{ViewProj: mgl32.Ident4()}
}

func (u *CameraUniform) Update(c *Camera) {
	u.ViewProj = c.BuildViewProjection()
}

func (u *CameraUniform) Bytes() []byte {
	buf := make([]byte, CameraUniformSize)
	for i, v := range u.ViewProj {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
