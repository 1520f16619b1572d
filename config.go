package brushrt

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Brush  BrushConfig  `toml:"brush"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type CameraConfig struct {
	// Speed is world units per frame.
	Speed float32 `toml:"speed"`
	FovY  float32 `toml:"fovy"`
	ZNear float32 `toml:"znear"`
	ZFar  float32 `toml:"zfar"`
}

type BrushConfig struct {
	Radius float32 `toml:"radius"`
	// Step is the radius change per scroll notch.
	Step  float32    `toml:"step"`
	Color [4]float32 `toml:"color"`
}

type RenderConfig struct {
	ClearColor      [4]float64 `toml:"clear_color"`
	VSync           bool       `toml:"vsync"`
	InstancesPerRow int        `toml:"instances_per_row"`
	InstanceSpacing float32    `toml:"instance_spacing"`
}

type LogConfig struct {
	Prefix string `toml:"prefix"`
	Debug  bool   `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "brushrt", Width: 1280, Height: 720},
		Camera: CameraConfig{Speed: 0.2, FovY: 45, ZNear: 0.1, ZFar: 100},
		Brush: BrushConfig{
			Radius: 5,
			Step:   1,
			Color:  [4]float32{1, 1, 1, 0.8},
		},
		Render: RenderConfig{
			ClearColor:      [4]float64{0.1, 0.2, 0.3, 1},
			VSync:           true,
			InstancesPerRow: 10,
			InstanceSpacing: 3,
		},
		Log: LogConfig{Prefix: "brushrt"},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Camera.ZNear <= 0:
		return fmt.Errorf("%w: camera znear %v must be positive", ErrInvalidConfig, c.Camera.ZNear)
	case c.Camera.ZNear >= c.Camera.ZFar:
		return fmt.Errorf("%w: camera znear %v must be below zfar %v", ErrInvalidConfig, c.Camera.ZNear, c.Camera.ZFar)
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("%w: camera fovy %v", ErrInvalidConfig, c.Camera.FovY)
	case c.Camera.Speed < 0:
		return fmt.Errorf("%w: camera speed %v", ErrInvalidConfig, c.Camera.Speed)
	case c.Brush.Radius <= 0:
		return fmt.Errorf("%w: brush radius %v must be positive", ErrInvalidConfig, c.Brush.Radius)
	case c.Brush.Step < 0:
		return fmt.Errorf("%w: brush step %v", ErrInvalidConfig, c.Brush.Step)
	case c.Render.InstancesPerRow <= 0:
		return fmt.Errorf("%w: instances_per_row %d", ErrInvalidConfig, c.Render.InstancesPerRow)
	}
	return nil
}
