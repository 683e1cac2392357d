package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown"
)

// GLFWInputAdapter adapts GLFW input to dropdown.InputState. It can also
// emulate a rotary encoder on the keyboard: Page Up / Page Down turn it and
// Space is its push button.
type GLFWInputAdapter struct {
	window  *glfw.Window
	input   *dropdown.InputState
	encoder *dropdown.Group
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  dropdown.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// BindEncoder routes the emulated encoder to g. nil disables it.
func (a *GLFWInputAdapter) BindEncoder(g *dropdown.Group) {
	a.encoder = g
}

// Update prepares the input state for a new frame.
// Call this before glfw.PollEvents.
func (a *GLFWInputAdapter) Update(dt float32) *dropdown.InputState {
	a.input.Reset()
	a.input.UpdateKeyRepeat(dt)

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *dropdown.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.encoder != nil && a.encoderKey(key, action) {
		return
	}

	k := glfwKeyToKey(key)
	if k == dropdown.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

// encoderKey feeds the emulated encoder. It reports whether key belongs to it.
func (a *GLFWInputAdapter) encoderKey(key glfw.Key, action glfw.Action) bool {
	var err error
	switch key {
	case glfw.KeyPageDown:
		if action != glfw.Release {
			err = a.encoder.Turn(1)
		}
	case glfw.KeyPageUp:
		if action != glfw.Release {
			err = a.encoder.Turn(-1)
		}
	case glfw.KeySpace:
		switch action {
		case glfw.Press:
			err = a.encoder.Press()
		case glfw.Release:
			err = a.encoder.Release()
		}
	default:
		return false
	}
	if err != nil {
		slog.Warn("encoder input failed", "err", err)
	}
	return true
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps GLFW keys to navigation keys.
func glfwKeyToKey(key glfw.Key) dropdown.Key {
	switch key {
	case glfw.KeyTab:
		return dropdown.KeyTab
	case glfw.KeyLeft:
		return dropdown.KeyLeft
	case glfw.KeyRight:
		return dropdown.KeyRight
	case glfw.KeyUp:
		return dropdown.KeyUp
	case glfw.KeyDown:
		return dropdown.KeyDown
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return dropdown.KeyEnter
	case glfw.KeyEscape:
		return dropdown.KeyEscape
	default:
		return dropdown.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) dropdown.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return dropdown.MouseButtonLeft
	case glfw.MouseButtonRight:
		return dropdown.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return dropdown.MouseButtonMiddle
	default:
		return -1
	}
}
