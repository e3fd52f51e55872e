package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/WaxieDLL/OpenGLPlayground/draw"
	"github.com/WaxieDLL/OpenGLPlayground/gui"
)

// GLFWInputAdapter adapts GLFW input to gui.InputState.
// Cursor positions are reported in framebuffer pixels.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// NewFrame clears last frame's edge events. Call it before
// glfw.PollEvents so the callbacks fill in this frame's events.
func (a *GLFWInputAdapter) NewFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	sx, sy := framebufferScale(w)
	a.input.SetMousePos(float32(xpos)*sx, float32(ypos)*sy)
}

// framebufferScale is the framebuffer to window size ratio; 2 on most
// HiDPI displays.
func framebufferScale(w *glfw.Window) (sx, sy float32) {
	ww, wh := w.GetSize()
	fw, fh := w.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	if key == glfw.KeyEscape {
		return gui.KeyEscape
	}
	return gui.KeyNone
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

// WindowDisplay reports a window's framebuffer size.
type WindowDisplay struct {
	Window *glfw.Window
}

// DisplaySize returns the framebuffer size in pixels. It is zero while the
// window is minimized.
func (d WindowDisplay) DisplaySize() (width, height float32) {
	w, h := d.Window.GetFramebufferSize()
	return float32(w), float32(h)
}

var _ draw.DisplaySizer = WindowDisplay{}

// SetWireframe switches polygon rasterization between outlines and fills.
func SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
