package glaze

import "fmt"

// Codes holds the windowing backend's native integer codes for the buttons,
// keys, actions and modifier masks the toolkit needs to interpret. They are
// supplied once at Handler construction and immutable afterwards; widgets
// read them through Handler.Codes instead of hardcoding any backend's
// values. E.g. PrimaryMouseButton is GLFW_MOUSE_BUTTON_1 under GLFW and
// SDL_BUTTON_LEFT under SDL.
type Codes struct {
	PrimaryMouseButton   int
	SecondaryMouseButton int
	MousePress           int
	MouseRelease         int

	KeyLeft      int
	KeyRight     int
	KeyUp        int
	KeyDown      int
	KeyHome      int
	KeyEnd       int
	KeyBackspace int
	KeyDelete    int
	KeyEnter     int

	// Clipboard shortcut keys.
	KeyA int
	KeyX int
	KeyC int
	KeyV int

	ModShift   int
	ModControl int
	ModCommand int
}

// Callback signatures for the seven event categories, one call per native
// event. Coordinates arrive in device units; the Screen normalizes them.
type (
	CursorPosFunc       func(x, y float64)
	MouseButtonFunc     func(button, action, modifiers int)
	KeyFunc             func(key, scancode, action, modifiers int)
	CharFunc            func(codepoint rune)
	DropFunc            func(filenames []string)
	ScrollFunc          func(x, y float64)
	FramebufferSizeFunc func(width, height int, pixelRatio float32)
)

// callbackList is an ordered collection of (screenID, fn) pairs.
// Insertion order is dispatch order.
type callbackList[F any] struct {
	entries []callbackEntry[F]
}

type callbackEntry[F any] struct {
	screenID int
	fn       F
}

func (l *callbackList[F]) add(screenID int, fn F) {
	l.entries = append(l.entries, callbackEntry[F]{screenID: screenID, fn: fn})
}

// remove drops the first entry registered under screenID. Removing an id
// that was never added is a no-op.
func (l *callbackList[F]) remove(screenID int) {
	for i, e := range l.entries {
		if e.screenID == screenID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// each invokes, in insertion order, every callback registered under
// screenID.
func (l *callbackList[F]) each(screenID int, visit func(F)) {
	for _, e := range l.entries {
		if e.screenID == screenID {
			visit(e.fn)
		}
	}
}

// Handler routes backend input events to registered screens and exposes the
// scalar services (time, clipboard, window visibility) a Screen needs from
// the windowing library. It replaces backend-specific callbacks with a
// uniform indirection: a new backend integrates by constructing one Handler
// with its native Codes and forwarding its native callbacks into the
// Handle*Event methods.
//
// A Handler is built once by the embedding application and must outlive
// every Screen constructed on it. Multiple screens may share one Handler;
// dispatch filters by screen id. All methods must be called from the event
// thread; Handler performs no locking.
type Handler struct {
	codes Codes

	timeFunc          func() float64
	windowVisibleFunc func(screenID int) bool
	setClipboardFunc  func(screenID int, text string)
	getClipboardFunc  func(screenID int) string

	cursorPos       callbackList[CursorPosFunc]
	mouseButton     callbackList[MouseButtonFunc]
	key             callbackList[KeyFunc]
	char            callbackList[CharFunc]
	drop            callbackList[DropFunc]
	scroll          callbackList[ScrollFunc]
	framebufferSize callbackList[FramebufferSizeFunc]
}

// NewHandler creates a Handler carrying the backend's native codes.
// The scalar callbacks (time, visibility, clipboard) must be set before the
// first Screen is constructed on this handler.
func NewHandler(codes Codes) *Handler {
	return &Handler{codes: codes}
}

// Codes returns the backend codes supplied at construction.
func (h *Handler) Codes() Codes {
	return h.codes
}

// SetTimeFunc installs the monotonic-seconds clock accessor.
func (h *Handler) SetTimeFunc(fn func() float64) {
	h.timeFunc = fn
}

// SetWindowVisibleFunc installs the native window visibility query.
func (h *Handler) SetWindowVisibleFunc(fn func(screenID int) bool) {
	h.windowVisibleFunc = fn
}

// SetClipboardFuncs installs the clipboard accessors.
func (h *Handler) SetClipboardFuncs(set func(screenID int, text string), get func(screenID int) string) {
	h.setClipboardFunc = set
	h.getClipboardFunc = get
}

// Time returns the backend clock in seconds. Calling it before SetTimeFunc
// is a configuration error and panics.
func (h *Handler) Time() float64 {
	if h.timeFunc == nil {
		panic(configError("time"))
	}
	return h.timeFunc()
}

// WindowVisible reports whether the native window backing screenID is
// visible. Panics if no callback was configured.
func (h *Handler) WindowVisible(screenID int) bool {
	if h.windowVisibleFunc == nil {
		panic(configError("window visibility"))
	}
	return h.windowVisibleFunc(screenID)
}

// SetClipboard stores text in the system clipboard of the window backing
// screenID. Panics if no callback was configured.
func (h *Handler) SetClipboard(screenID int, text string) {
	if h.setClipboardFunc == nil {
		panic(configError("clipboard set"))
	}
	h.setClipboardFunc(screenID, text)
}

// Clipboard returns the system clipboard contents of the window backing
// screenID. Panics if no callback was configured.
func (h *Handler) Clipboard(screenID int) string {
	if h.getClipboardFunc == nil {
		panic(configError("clipboard get"))
	}
	return h.getClipboardFunc(screenID)
}

func configError(what string) error {
	return fmt.Errorf("glaze: %s callback used before it was configured", what)
}

// AddCursorPosCallback registers a cursor position callback for screenID.
func (h *Handler) AddCursorPosCallback(screenID int, fn CursorPosFunc) {
	h.cursorPos.add(screenID, fn)
}

// RemoveCursorPosCallback removes the first cursor position callback
// registered under screenID.
func (h *Handler) RemoveCursorPosCallback(screenID int) {
	h.cursorPos.remove(screenID)
}

// HandleCursorPosEvent dispatches a native cursor move to every callback
// registered under screenID.
func (h *Handler) HandleCursorPosEvent(screenID int, x, y float64) {
	h.cursorPos.each(screenID, func(fn CursorPosFunc) { fn(x, y) })
}

// AddMouseButtonCallback registers a mouse button callback for screenID.
func (h *Handler) AddMouseButtonCallback(screenID int, fn MouseButtonFunc) {
	h.mouseButton.add(screenID, fn)
}

// RemoveMouseButtonCallback removes the first mouse button callback
// registered under screenID.
func (h *Handler) RemoveMouseButtonCallback(screenID int) {
	h.mouseButton.remove(screenID)
}

// HandleMouseButtonEvent dispatches a native mouse button event to every
// callback registered under screenID.
func (h *Handler) HandleMouseButtonEvent(screenID int, button, action, modifiers int) {
	h.mouseButton.each(screenID, func(fn MouseButtonFunc) { fn(button, action, modifiers) })
}

// AddKeyCallback registers a key callback for screenID.
func (h *Handler) AddKeyCallback(screenID int, fn KeyFunc) {
	h.key.add(screenID, fn)
}

// RemoveKeyCallback removes the first key callback registered under
// screenID.
func (h *Handler) RemoveKeyCallback(screenID int) {
	h.key.remove(screenID)
}

// HandleKeyEvent dispatches a native key event to every callback registered
// under screenID.
func (h *Handler) HandleKeyEvent(screenID int, key, scancode, action, modifiers int) {
	h.key.each(screenID, func(fn KeyFunc) { fn(key, scancode, action, modifiers) })
}

// AddCharCallback registers a unicode character callback for screenID.
func (h *Handler) AddCharCallback(screenID int, fn CharFunc) {
	h.char.add(screenID, fn)
}

// RemoveCharCallback removes the first character callback registered under
// screenID.
func (h *Handler) RemoveCharCallback(screenID int) {
	h.char.remove(screenID)
}

// HandleCharEvent dispatches a native text-input codepoint to every
// callback registered under screenID.
func (h *Handler) HandleCharEvent(screenID int, codepoint rune) {
	h.char.each(screenID, func(fn CharFunc) { fn(codepoint) })
}

// AddDropCallback registers a file drop callback for screenID.
func (h *Handler) AddDropCallback(screenID int, fn DropFunc) {
	h.drop.add(screenID, fn)
}

// RemoveDropCallback removes the first drop callback registered under
// screenID.
func (h *Handler) RemoveDropCallback(screenID int) {
	h.drop.remove(screenID)
}

// HandleDropEvent dispatches a native file drop to every callback
// registered under screenID.
func (h *Handler) HandleDropEvent(screenID int, filenames []string) {
	h.drop.each(screenID, func(fn DropFunc) { fn(filenames) })
}

// AddScrollCallback registers a scroll callback for screenID.
func (h *Handler) AddScrollCallback(screenID int, fn ScrollFunc) {
	h.scroll.add(screenID, fn)
}

// RemoveScrollCallback removes the first scroll callback registered under
// screenID.
func (h *Handler) RemoveScrollCallback(screenID int) {
	h.scroll.remove(screenID)
}

// HandleScrollEvent dispatches a native scroll event to every callback
// registered under screenID.
func (h *Handler) HandleScrollEvent(screenID int, x, y float64) {
	h.scroll.each(screenID, func(fn ScrollFunc) { fn(x, y) })
}

// AddFramebufferSizeCallback registers a framebuffer resize callback for
// screenID.
func (h *Handler) AddFramebufferSizeCallback(screenID int, fn FramebufferSizeFunc) {
	h.framebufferSize.add(screenID, fn)
}

// RemoveFramebufferSizeCallback removes the first framebuffer resize
// callback registered under screenID.
func (h *Handler) RemoveFramebufferSizeCallback(screenID int) {
	h.framebufferSize.remove(screenID)
}

// HandleFramebufferSizeEvent dispatches a native framebuffer resize to
// every callback registered under screenID.
func (h *Handler) HandleFramebufferSizeEvent(screenID int, width, height int, pixelRatio float32) {
	h.framebufferSize.each(screenID, func(fn FramebufferSizeFunc) { fn(width, height, pixelRatio) })
}
