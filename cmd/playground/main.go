// Command playground opens a window, draws the registry's shapes every frame
// and shows a debug panel for editing them.
//
//	go run ./cmd/playground -v
//	PLAYGROUND_WIDTH=1920 PLAYGROUND_HEIGHT=1080 go run ./cmd/playground
//
// ESC closes the window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/WaxieDLL/OpenGLPlayground/backend/opengl"
	"github.com/WaxieDLL/OpenGLPlayground/config"
	"github.com/WaxieDLL/OpenGLPlayground/draw"
	"github.com/WaxieDLL/OpenGLPlayground/gui"
	"github.com/WaxieDLL/OpenGLPlayground/overlay"
	"github.com/WaxieDLL/OpenGLPlayground/shaders"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromOS()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level := new(slog.LevelVar)
	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	draw.SetVerbose(cfg.Verbose)
	gui.SetVerbose(cfg.Verbose)
	overlay.SetVerbose(cfg.Verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()
	logger.Info("GLFW initialized", "version", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	logger.Info("window created", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("OpenGL ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO)

	program, err := loadProgram(cfg)
	if err != nil {
		logger.Error("shader program", "err", err)
		return err
	}
	defer opengl.DeleteProgram(program)

	reg := draw.NewRegistry(draw.WithRegistryLogger(logger))
	reg.CreateRectangle("1rect", mgl32.Vec2{100, 100}, mgl32.Vec2{100, 100}, mgl32.Vec4{255, 100, 100, 255})
	reg.CreateRectangle("2rect", mgl32.Vec2{400, 400}, mgl32.Vec2{100, 100}, mgl32.Vec4{255, 255, 255, 255})
	logger.Info("scene created", "objects", reg.Len())

	display := opengl.WindowDisplay{Window: window}
	scene := draw.NewRenderer(reg, opengl.NewDevice(), display, draw.WithLogger(logger))
	defer scene.Cleanup()

	atlas := gui.DefaultFontAtlas()
	fbW, fbH := window.GetFramebufferSize()
	uiRenderer, err := opengl.NewRenderer(fbW, fbH, atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer uiRenderer.Delete()

	ui := gui.New(uiRenderer, gui.WithFontAtlas(atlas))
	input := opengl.NewGLFWInputAdapter(window)
	panel := overlay.New(reg, overlay.WithLogger(logger), overlay.WithOnWireframe(opengl.SetWireframe))

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		ui.Resize(width, height)
	})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		input.NewFrame()
		glfw.PollEvents()
		if input.Input().KeyPressed(gui.KeyEscape) {
			window.SetShouldClose(true)
		}

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		c := cfg.ClearColor
		gl.ClearColor(c[0]*c[3], c[1]*c[3], c[2]*c[3], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Input(), gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		panel.Draw(ctx)

		if _, err := scene.RenderAll(program); err != nil && !errors.Is(err, draw.ErrInvalidViewport) {
			logger.Error("render scene", "err", err)
			return err
		}

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	logger.Info("shutting down")
	return nil
}

func loadProgram(cfg config.Config) (draw.Program, error) {
	if cfg.EmbeddedShaders() {
		return opengl.LoadProgram(shaders.RectVertex, shaders.RectFragment)
	}
	return opengl.LoadProgramFiles(cfg.VertexShader, cfg.FragmentShader)
}
