package brushrt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(5), cfg.Brush.Radius)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"znear zero":     func(c *Config) { c.Camera.ZNear = 0 },
		"znear past far": func(c *Config) { c.Camera.ZNear = 200 },
		"zero width":     func(c *Config) { c.Window.Width = 0 },
		"radius":         func(c *Config) { c.Brush.Radius = -1 },
		"fovy":           func(c *Config) { c.Camera.FovY = 180 },
		"instances":      func(c *Config) { c.Render.InstancesPerRow = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[camera]
speed = 0.5

[brush]
color = [1.0, 0.0, 0.0, 1.0]
`))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, float32(0.5), cfg.Camera.Speed)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, cfg.Brush.Color)
	assert.Equal(t, def.Camera.ZNear, cfg.Camera.ZNear)
	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Render, cfg.Render)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := ParseConfig([]byte("[camera]\nznear = -1.0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseConfig([]byte("[camera\n"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brushrt.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"test\"\nwidth = 640\nheight = 480\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, WindowConfig{Title: "test", Width: 640, Height: 480}, cfg.Window)
}

func TestWatchConfigDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brushrt.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nspeed = 0.1\n"), 0o644))

	w, err := WatchConfig(path, NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[camera]\nspeed = 0.9\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates:
			if cfg.Camera.Speed == 0.9 {
				assert.NoError(t, w.Close())
				assert.NoError(t, w.Close())
				return
			}
		case <-deadline:
			t.Fatal("no config update delivered")
		}
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig("brushrt.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
