// Package sdl bridges SDL2 windows to glaze input handlers. Unlike GLFW's
// per-window callbacks, SDL delivers one global event stream; ProcessEvent
// demultiplexes it by window id onto the registered screens.
package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/glaze-ui/glaze"
)

// Codes returns SDL's native button, action, key and modifier codes.
func Codes() glaze.Codes {
	return glaze.Codes{
		PrimaryMouseButton:   sdl.BUTTON_LEFT,
		SecondaryMouseButton: sdl.BUTTON_RIGHT,
		MousePress:           sdl.PRESSED,
		MouseRelease:         sdl.RELEASED,

		KeyLeft:      int(sdl.K_LEFT),
		KeyRight:     int(sdl.K_RIGHT),
		KeyUp:        int(sdl.K_UP),
		KeyDown:      int(sdl.K_DOWN),
		KeyHome:      int(sdl.K_HOME),
		KeyEnd:       int(sdl.K_END),
		KeyBackspace: int(sdl.K_BACKSPACE),
		KeyDelete:    int(sdl.K_DELETE),
		KeyEnter:     int(sdl.K_RETURN),

		KeyA: int(sdl.K_a),
		KeyX: int(sdl.K_x),
		KeyC: int(sdl.K_c),
		KeyV: int(sdl.K_v),

		ModShift:   int(sdl.KMOD_SHIFT),
		ModControl: int(sdl.KMOD_CTRL),
		ModCommand: int(sdl.KMOD_GUI),
	}
}

// Backend connects SDL windows to a shared glaze.Handler.
type Backend struct {
	handler   *glaze.Handler
	windows   map[int]*sdl.Window
	windowIDs map[uint32]int
}

// New creates a backend whose handler uses SDL's clock, clipboard and
// window visibility. sdl.Init must have succeeded already.
func New() *Backend {
	b := &Backend{
		windows:   make(map[int]*sdl.Window),
		windowIDs: make(map[uint32]int),
	}
	h := glaze.NewHandler(Codes())
	h.SetTimeFunc(func() float64 {
		return float64(sdl.GetTicks64()) / 1000
	})
	h.SetWindowVisibleFunc(func(screenID int) bool {
		w, ok := b.windows[screenID]
		return ok && w.GetFlags()&sdl.WINDOW_SHOWN != 0
	})
	h.SetClipboardFuncs(
		func(_ int, text string) { _ = sdl.SetClipboardText(text) },
		func(_ int) string {
			text, err := sdl.GetClipboardText()
			if err != nil {
				return ""
			}
			return text
		},
	)
	b.handler = h
	return b
}

// Handler returns the handler screens register with.
func (b *Backend) Handler() *glaze.Handler { return b.handler }

// PixelRatio returns the drawable-to-logical scale of window.
func PixelRatio(window *sdl.Window) float32 {
	drawableWidth, _ := window.GLGetDrawableSize()
	width, _ := window.GetSize()
	if width == 0 {
		return 1
	}
	return float32(drawableWidth) / float32(width)
}

// Register maps window to screenID for event demultiplexing.
func (b *Backend) Register(screenID int, window *sdl.Window) {
	b.windows[screenID] = window
	b.windowIDs[uint32(window.GetID())] = screenID
}

// Unregister forgets the window. The screen's own Dispose removes its
// handler registrations.
func (b *Backend) Unregister(screenID int) {
	window, ok := b.windows[screenID]
	if !ok {
		return
	}
	delete(b.windowIDs, uint32(window.GetID()))
	delete(b.windows, screenID)
}

func (b *Backend) screenFor(windowID uint32) (int, bool) {
	id, ok := b.windowIDs[windowID]
	return id, ok
}

// ProcessEvent translates one SDL event into the corresponding handler
// dispatch. Events for unregistered windows are dropped; call it for every
// event returned by sdl.PollEvent.
func (b *Backend) ProcessEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.MouseMotionEvent:
		if id, ok := b.screenFor(e.WindowID); ok {
			b.handler.HandleCursorPosEvent(id, float64(e.X), float64(e.Y))
		}
	case *sdl.MouseButtonEvent:
		if id, ok := b.screenFor(e.WindowID); ok {
			b.handler.HandleMouseButtonEvent(id, int(e.Button), int(e.State), int(sdl.GetModState()))
		}
	case *sdl.MouseWheelEvent:
		if id, ok := b.screenFor(e.WindowID); ok {
			b.handler.HandleScrollEvent(id, float64(e.X), float64(e.Y))
		}
	case *sdl.KeyboardEvent:
		if id, ok := b.screenFor(e.WindowID); ok {
			action := sdl.RELEASED
			if e.Type == sdl.KEYDOWN {
				action = sdl.PRESSED
			}
			b.handler.HandleKeyEvent(id, int(e.Keysym.Sym), int(e.Keysym.Scancode), action, int(e.Keysym.Mod))
		}
	case *sdl.TextInputEvent:
		if id, ok := b.screenFor(e.WindowID); ok {
			for _, r := range e.GetText() {
				b.handler.HandleCharEvent(id, r)
			}
		}
	case *sdl.DropEvent:
		if e.Type != sdl.DROPFILE {
			return
		}
		if id, ok := b.screenFor(e.WindowID); ok {
			b.handler.HandleDropEvent(id, []string{e.File})
		}
	case *sdl.WindowEvent:
		if e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
			return
		}
		if id, ok := b.screenFor(e.WindowID); ok {
			window := b.windows[id]
			drawableWidth, drawableHeight := window.GLGetDrawableSize()
			b.handler.HandleFramebufferSizeEvent(id,
				int(drawableWidth), int(drawableHeight), PixelRatio(window))
		}
	}
}
