package app

import (
	"fmt"
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/brushrt"
	"github.com/gekko3d/brushrt/meshrt/rt/core"
	"github.com/gekko3d/brushrt/meshrt/rt/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	MaterialLayout *wgpu.BindGroupLayout
	CameraBinding  *gpu.CameraBinding
	MeshPipeline   *gpu.MeshPipeline
	BrushPass      *gpu.BrushPass
	Depth          *gpu.DepthTexture
	Model          *gpu.Model
	Instances      *gpu.InstanceBuffer

	Config        brushrt.Config
	Logger        brushrt.Logger
	ConfigUpdates <-chan brushrt.Config

	Camera        *core.Camera
	CameraUniform core.CameraUniform
	Controller    *core.CameraController
	Brush         *core.BrushState
	BrushStyle    gpu.BrushStyle
	ClearColor    wgpu.Color

	// Width and Height are the last non-zero surface size.
	Width  uint32
	Height uint32

	Stats *FrameStats

	presenter Presenter
	format    wgpu.TextureFormat
	newDepth  func(width, height uint32) (*gpu.DepthTexture, error)
}

func NewApp(window *glfw.Window, cfg brushrt.Config, logger brushrt.Logger) *App {
	if logger == nil {
		logger = brushrt.NewNopLogger()
	}
	cam := core.NewCamera(cfg.Window.Width, cfg.Window.Height)
	cam.FovY = cfg.Camera.FovY
	cam.ZNear = cfg.Camera.ZNear
	cam.ZFar = cfg.Camera.ZFar

	brush := core.NewBrushState()
	brush.UpdateRadius(cfg.Brush.Radius)

	a := &App{
		Window:        window,
		Config:        cfg,
		Logger:        logger,
		Camera:        cam,
		CameraUniform: core.NewCameraUniform(),
		Controller:    core.NewCameraController(cfg.Camera.Speed),
		Brush:         brush,
		BrushStyle:    gpu.BrushStyle{Color: cfg.Brush.Color},
		ClearColor:    clearColor(cfg.Render.ClearColor),
		Width:         uint32(cfg.Window.Width),
		Height:        uint32(cfg.Window.Height),
		Stats:         NewFrameStats(),
	}
	a.CameraUniform.Update(cam)
	return a
}

func clearColor(c [4]float64) wgpu.Color {
	return wgpu.Color{c[0], c[1], c[2], c[3]}
}

func (a *App) Init() error {
	if err := a.Camera.Validate(); err != nil {
		return err
	}

	a.Instance = wgpu.CreateInstance(nil)
	surface := a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	a.format = caps.Formats[0]

	presentMode := wgpu.PresentModeFifo
	if !a.Config.Render.VSync {
		presentMode = wgpu.PresentModeImmediate
	}
	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      a.format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.presenter = newSurfacePresenter(surface, adapter, a.Device, config)
	a.presenter.Configure(config.Width, config.Height)
	a.Width, a.Height = config.Width, config.Height
	a.Camera.SetAspect(width, height)
	a.Logger.Infof("surface %dx%d format %v", width, height, a.format)

	return a.setupScene()
}

func (a *App) setupScene() error {
	var err error

	if a.MaterialLayout, err = gpu.NewMaterialLayout(a.Device); err != nil {
		return fmt.Errorf("material layout: %w", err)
	}
	a.CameraUniform.Update(a.Camera)
	if a.CameraBinding, err = gpu.NewCameraBinding(a.Device, a.CameraUniform); err != nil {
		return fmt.Errorf("camera binding: %w", err)
	}
	if a.MeshPipeline, err = gpu.NewMeshPipeline(a.Device, a.format, a.MaterialLayout, a.CameraBinding.Layout); err != nil {
		return fmt.Errorf("mesh pipeline: %w", err)
	}
	if a.BrushPass, err = gpu.NewBrushPass(a.Device, a.format, a.Brush.Uniform, a.BrushStyle); err != nil {
		return fmt.Errorf("brush pass: %w", err)
	}
	a.newDepth = func(width, height uint32) (*gpu.DepthTexture, error) {
		return gpu.NewDepthTexture(a.Device, width, height)
	}
	if a.Depth, err = a.newDepth(a.Width, a.Height); err != nil {
		return fmt.Errorf("depth texture: %w", err)
	}
	if a.Model, err = a.buildModel(); err != nil {
		return err
	}

	grid := core.InstanceGrid(a.Config.Render.InstancesPerRow, a.Config.Render.InstanceSpacing)
	if a.Instances, err = gpu.NewInstanceBuffer(a.Device, core.RawInstances(grid)); err != nil {
		return fmt.Errorf("instances: %w", err)
	}
	a.Logger.Debugf("model %s: %d meshes, %d instances", a.Model.ID, len(a.Model.Meshes), a.Instances.Count)
	return nil
}

// buildModel assembles the demo model: a checkered cube with a pentagon
// floating above it, each with its own material.
func (a *App) buildModel() (*gpu.Model, error) {
	var (
		meshes    []*gpu.Mesh
		materials []*gpu.Material
	)
	fail := func(err error) (*gpu.Model, error) {
		(&gpu.Model{Meshes: meshes, Materials: materials}).Release()
		return nil, fmt.Errorf("build model: %w", err)
	}

	palettes := [][2]color.RGBA{
		{{R: 230, G: 230, B: 230, A: 255}, {R: 40, G: 40, B: 40, A: 255}},
		{{R: 240, G: 170, B: 40, A: 255}, {R: 120, G: 50, B: 20, A: 255}},
	}
	for i, p := range palettes {
		name := fmt.Sprintf("checker-%d", i)
		tex, err := gpu.NewTexture(a.Device, a.Queue, core.Checkerboard(256, 8, p[0], p[1]), name)
		if err != nil {
			return fail(err)
		}
		mat, err := gpu.NewMaterial(a.Device, a.MaterialLayout, name, tex)
		if err != nil {
			tex.Release()
			return fail(err)
		}
		materials = append(materials, mat)
	}

	cubeV, cubeI := core.Cube(1)
	cube, err := gpu.NewMesh(a.Device, "cube", cubeV, cubeI, 0)
	if err != nil {
		return fail(err)
	}
	meshes = append(meshes, cube)

	pentV, pentI := core.Pentagon()
	for i := range pentV {
		pentV[i].Position[1] += 1.1
	}
	pent, err := gpu.NewMesh(a.Device, "pentagon", pentV, pentI, 1)
	if err != nil {
		return fail(err)
	}
	meshes = append(meshes, pent)

	model, err := gpu.NewModel(meshes, materials)
	if err != nil {
		return fail(err)
	}
	return model, nil
}

// Resize ignores zero dimensions, which minimized windows report. The depth
// target is rebuilt on every accepted resize, so a failed rebuild is retried
// by the next one.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.Width, a.Height = uint32(w), uint32(h)
	a.presenter.Configure(a.Width, a.Height)
	a.Camera.SetAspect(w, h)

	if a.newDepth == nil {
		return
	}
	if a.Depth != nil {
		a.Depth.Release()
		a.Depth = nil
	}
	depth, err := a.newDepth(a.Width, a.Height)
	if err != nil {
		a.Logger.Errorf("resize depth texture: %v", err)
		return
	}
	a.Depth = depth
}

// Size returns the last non-zero surface size.
func (a *App) Size() (int, int) {
	return int(a.Width), int(a.Height)
}

// Input feeds an event to the camera controller or the brush and reports
// whether it was consumed.
func (a *App) Input(ev Event) bool {
	switch e := ev.(type) {
	case KeyEvent:
		return a.Controller.ProcessKey(e.Key, e.Pressed)
	case CursorMovedEvent:
		a.Brush.UpdatePosition(mgl32.Vec3{float32(e.X), float32(e.Y), 0})
		return true
	case ScrollEvent:
		switch {
		case e.DY > 0:
			a.Brush.UpdateRadius(a.Brush.Radius + a.Config.Brush.Step)
		case e.DY < 0:
			a.Brush.UpdateRadius(a.Brush.Radius - a.Config.Brush.Step)
		default:
			return false
		}
		return true
	}
	return false
}

func (a *App) Update() {
	a.Stats.BeginScope("update")
	defer a.Stats.EndScope("update")

	a.drainConfigUpdates()

	a.Controller.Update(a.Camera)
	a.CameraUniform.Update(a.Camera)
	if a.CameraBinding != nil {
		a.CameraBinding.Uniform.Set(a.CameraUniform.Bytes())
	}
}

func (a *App) drainConfigUpdates() {
	for {
		select {
		case cfg, ok := <-a.ConfigUpdates:
			if !ok {
				a.ConfigUpdates = nil
				return
			}
			a.ApplyConfig(cfg)
		default:
			return
		}
	}
}

// ApplyConfig takes over the fields that can change while running. Window,
// projection and instance settings need a restart.
func (a *App) ApplyConfig(cfg brushrt.Config) {
	if cfg.Log.Debug != a.Config.Log.Debug {
		a.Logger.SetDebug(cfg.Log.Debug)
	}
	a.Config.Camera.Speed = cfg.Camera.Speed
	a.Config.Brush.Step = cfg.Brush.Step
	a.Config.Brush.Color = cfg.Brush.Color
	a.Config.Render.ClearColor = cfg.Render.ClearColor
	a.Config.Log.Debug = cfg.Log.Debug

	a.Controller.Speed = cfg.Camera.Speed
	a.ClearColor = clearColor(cfg.Render.ClearColor)
	a.BrushStyle = gpu.BrushStyle{Color: cfg.Brush.Color}
	if a.BrushPass != nil {
		a.BrushPass.SetStyle(a.BrushStyle)
	}
}

// flushUniforms uploads every dirty uniform once, before any pass reads it.
func (a *App) flushUniforms(write gpu.WriteFunc) int {
	n := 0
	if a.CameraBinding.Uniform.Flush(write) {
		n++
	}
	a.BrushPass.Sync(a.Brush)
	n += a.BrushPass.Flush(write)
	return n
}

// Render draws one frame. Surface acquisition failures are returned as one
// of ErrSurfaceLost, ErrSurfaceOutdated, ErrOutOfMemory, ErrDeviceLost or
// ErrTimeout. A missing depth target reads as an outdated surface so the
// loop reconfigures, which rebuilds it.
func (a *App) Render() error {
	a.Stats.BeginScope("render")
	defer a.Stats.EndScope("render")

	if a.Depth == nil {
		return fmt.Errorf("%w: no depth target", ErrSurfaceOutdated)
	}

	view, err := a.presenter.Acquire()
	if err != nil {
		return classifySurfaceError(err)
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		a.presenter.Discard()
		return fmt.Errorf("create command encoder: %w", err)
	}

	a.recordFrame(&commandFrame{
		encoder: encoder,
		target:  view,
		depth:   a.Depth.View,
		clear:   a.ClearColor,
	}, func(buf *wgpu.Buffer, data []byte) {
		a.Queue.WriteBuffer(buf, 0, data)
	})

	cmd, err := encoder.Finish(nil)
	if err != nil {
		a.presenter.Discard()
		return fmt.Errorf("finish encoder: %w", err)
	}
	a.Queue.Submit(cmd)
	a.presenter.Present()

	a.Stats.SetCount("draw_calls", len(a.Model.Meshes)+1)
	a.Stats.SetCount("instances", int(a.Instances.Count))
	if a.Stats.EndFrame() {
		a.Logger.Debugf("frame stats: %s", a.Stats)
	}
	return nil
}

// Release frees every GPU object the app owns.
func (a *App) Release() {
	if a.Instances != nil {
		a.Instances.Release()
		a.Instances = nil
	}
	if a.Model != nil {
		a.Model.Release()
		a.Model = nil
	}
	if a.Depth != nil {
		a.Depth.Release()
		a.Depth = nil
	}
	if a.BrushPass != nil {
		a.BrushPass.Release()
		a.BrushPass = nil
	}
	if a.MeshPipeline != nil {
		a.MeshPipeline.Release()
		a.MeshPipeline = nil
	}
	if a.CameraBinding != nil {
		a.CameraBinding.Release()
		a.CameraBinding = nil
	}
	if a.MaterialLayout != nil {
		a.MaterialLayout.Release()
		a.MaterialLayout = nil
	}
	if a.presenter != nil {
		a.presenter.Release()
		a.presenter = nil
	}
	if a.Device != nil {
		a.Device.Release()
		a.Device = nil
	}
	if a.Adapter != nil {
		a.Adapter.Release()
		a.Adapter = nil
	}
	if a.Instance != nil {
		a.Instance.Release()
		a.Instance = nil
	}
}
