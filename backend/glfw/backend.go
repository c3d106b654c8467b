// Package glfw bridges GLFW windows to glaze input handlers. A Backend
// owns one glaze.Handler configured with GLFW's native codes and scalar
// services; Register wires a window's callbacks to a screen id.
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glaze-ui/glaze"
)

// Codes returns GLFW's native button, action, key and modifier codes.
func Codes() glaze.Codes {
	return glaze.Codes{
		PrimaryMouseButton:   int(glfw.MouseButton1),
		SecondaryMouseButton: int(glfw.MouseButton2),
		MousePress:           int(glfw.Press),
		MouseRelease:         int(glfw.Release),

		KeyLeft:      int(glfw.KeyLeft),
		KeyRight:     int(glfw.KeyRight),
		KeyUp:        int(glfw.KeyUp),
		KeyDown:      int(glfw.KeyDown),
		KeyHome:      int(glfw.KeyHome),
		KeyEnd:       int(glfw.KeyEnd),
		KeyBackspace: int(glfw.KeyBackspace),
		KeyDelete:    int(glfw.KeyDelete),
		KeyEnter:     int(glfw.KeyEnter),

		KeyA: int(glfw.KeyA),
		KeyX: int(glfw.KeyX),
		KeyC: int(glfw.KeyC),
		KeyV: int(glfw.KeyV),

		ModShift:   int(glfw.ModShift),
		ModControl: int(glfw.ModControl),
		ModCommand: int(glfw.ModSuper),
	}
}

// Backend connects GLFW windows to a shared glaze.Handler.
type Backend struct {
	handler *glaze.Handler
	windows map[int]*glfw.Window
}

// New creates a backend whose handler uses GLFW's clock, clipboard and
// window visibility. glfw.Init must have succeeded already.
func New() *Backend {
	b := &Backend{windows: make(map[int]*glfw.Window)}
	h := glaze.NewHandler(Codes())
	h.SetTimeFunc(glfw.GetTime)
	h.SetWindowVisibleFunc(func(screenID int) bool {
		w, ok := b.windows[screenID]
		return ok && w.GetAttrib(glfw.Visible) == glfw.True
	})
	h.SetClipboardFuncs(
		func(screenID int, text string) {
			if w, ok := b.windows[screenID]; ok {
				w.SetClipboardString(text)
			}
		},
		func(screenID int) string {
			if w, ok := b.windows[screenID]; ok {
				return w.GetClipboardString()
			}
			return ""
		},
	)
	b.handler = h
	return b
}

// Handler returns the handler screens register with.
func (b *Backend) Handler() *glaze.Handler { return b.handler }

// PixelRatio returns the framebuffer-to-logical scale of window.
func PixelRatio(window *glfw.Window) float32 {
	fbWidth, _ := window.GetFramebufferSize()
	width, _ := window.GetSize()
	if width == 0 {
		return 1
	}
	return float32(fbWidth) / float32(width)
}

// Register installs window's input callbacks, forwarding every event to
// the handler under screenID. Call it before constructing the screen so
// the visibility query can resolve.
func (b *Backend) Register(screenID int, window *glfw.Window) {
	b.windows[screenID] = window

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		b.handler.HandleCursorPosEvent(screenID, x, y)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b.handler.HandleMouseButtonEvent(screenID, int(button), int(action), int(mods))
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		b.handler.HandleKeyEvent(screenID, int(key), scancode, int(action), int(mods))
	})
	window.SetCharCallback(func(_ *glfw.Window, codepoint rune) {
		b.handler.HandleCharEvent(screenID, codepoint)
	})
	window.SetDropCallback(func(_ *glfw.Window, filenames []string) {
		b.handler.HandleDropEvent(screenID, filenames)
	})
	window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		b.handler.HandleScrollEvent(screenID, x, y)
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		b.handler.HandleFramebufferSizeEvent(screenID, width, height, PixelRatio(w))
	})
}

// Unregister detaches window callbacks and forgets the window. The
// screen's own Dispose removes its handler registrations.
func (b *Backend) Unregister(screenID int) {
	window, ok := b.windows[screenID]
	if !ok {
		return
	}
	window.SetCursorPosCallback(nil)
	window.SetMouseButtonCallback(nil)
	window.SetKeyCallback(nil)
	window.SetCharCallback(nil)
	window.SetDropCallback(nil)
	window.SetScrollCallback(nil)
	window.SetFramebufferSizeCallback(nil)
	delete(b.windows, screenID)
}
