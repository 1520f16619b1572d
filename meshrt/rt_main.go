package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/brushrt"
	"github.com/gekko3d/brushrt/meshrt/rt/app"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "brushrt.toml", "TOML config file, reloaded on change")
	debug := flag.Bool("debug", false, "Enable debug logging and frame stats")
	flag.Parse()

	cfg, err := brushrt.LoadConfig(*configPath)
	if err != nil {
		brushrt.NewDefaultLogger("brushrt", true).Errorf("%v", err)
		os.Exit(1)
	}
	logger := brushrt.NewDefaultLogger(cfg.Log.Prefix, cfg.Log.Debug || *debug)

	if err := glfw.Init(); err != nil {
		logger.Errorf("glfw init: %v", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Errorf("create window: %v", err)
		os.Exit(1)
	}
	defer window.Destroy()

	application := app.NewApp(window, cfg, logger)
	if err := application.Init(); err != nil {
		logger.Errorf("init: %v", err)
		application.Release()
		os.Exit(1)
	}
	defer application.Release()

	if watcher, err := brushrt.WatchConfig(*configPath, logger); err != nil {
		logger.Warnf("config hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
		application.ConfigUpdates = watcher.Updates
	}

	loop := app.NewLoop(application, logger)
	installCallbacks(window, loop)

	for !window.ShouldClose() {
		glfw.PollEvents()
		loop.Dispatch(app.RedrawRequestedEvent{})
		if !loop.Step() {
			break
		}
	}
	logger.Infof("shutting down")
}

func installCallbacks(window *glfw.Window, loop *app.Loop) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		loop.Dispatch(app.ResizedEvent{Width: width, Height: height})
	})

	window.SetCloseCallback(func(w *glfw.Window) {
		loop.Dispatch(app.CloseRequestedEvent{})
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		winW, winH := w.GetSize()
		fbW, fbH := w.GetFramebufferSize()
		x, y := toFramebuffer(xpos, ypos, winW, winH, fbW, fbH)
		loop.Dispatch(app.CursorMovedEvent{X: x, Y: y})
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		loop.Dispatch(app.ScrollEvent{DY: yoff})
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		loop.Dispatch(app.KeyEvent{Key: translateKey(key), Pressed: action == glfw.Press})
	})
}
