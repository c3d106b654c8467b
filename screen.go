package glaze

import (
	"os"
	"runtime"
)

// scaleFramebufferCoords selects whether native cursor and framebuffer
// coordinates arrive in physical pixels and must be divided by the pixel
// ratio. macOS windowing reports logical points already.
var scaleFramebufferCoords = runtime.GOOS == "windows" || runtime.GOOS == "linux"

// osExit is swapped out by tests exercising the dispatch panic boundary.
var osExit = os.Exit

// Screen is the root of a widget tree bound to one native window. It
// registers itself with a Handler under a screen id and translates the raw
// event stream into widget-tree traversals: hit testing, drag capture,
// modal gating, focus-path maintenance and window z-order.
//
// A Screen is single-threaded; every method must be called from the thread
// feeding the Handler.
type Screen struct {
	BaseWidget
	handler    *Handler
	id         int
	renderer   Renderer
	pixelRatio float32
	background Color

	cursor      Cursor
	mousePos    Vec2
	mouseState  int
	modifiers   int
	dragActive  bool
	dragWidget  Widget
	calibration Vec2

	lastInteraction float64
	focusPath       []Widget

	resizeFunc func(Vec2)
	dropFunc   func([]string)
}

// ScreenOption configures a Screen at construction.
type ScreenOption func(*Screen)

// WithRenderer attaches the drawing surface used by DrawAll.
func WithRenderer(r Renderer) ScreenOption {
	return func(s *Screen) { s.renderer = r }
}

// WithTheme replaces the default theme.
func WithTheme(t *Theme) ScreenOption {
	return func(s *Screen) { s.theme = t }
}

// WithBackground sets the clear color painted behind all windows.
func WithBackground(c Color) ScreenOption {
	return func(s *Screen) { s.background = c }
}

// WithResizeCallback registers fn to run after the screen adopts a new
// framebuffer size.
func WithResizeCallback(fn func(size Vec2)) ScreenOption {
	return func(s *Screen) { s.resizeFunc = fn }
}

// WithDropCallback registers fn to receive file paths dropped onto the
// native window.
func WithDropCallback(fn func(filenames []string)) ScreenOption {
	return func(s *Screen) { s.dropFunc = fn }
}

// WithCursorCalibration subtracts offset from every incoming cursor
// position, compensating windowing stacks that report the hotspot off by a
// fixed amount. The default is no adjustment.
func WithCursorCalibration(offset Vec2) ScreenOption {
	return func(s *Screen) { s.calibration = offset }
}

// NewScreen creates a screen of the given logical size, registers its
// event callbacks with handler under id, and adopts the native window's
// current visibility. The handler's time and visibility callbacks must be
// configured beforehand.
func NewScreen(handler *Handler, id int, size Vec2, pixelRatio float32, opts ...ScreenOption) *Screen {
	s := &Screen{
		handler:    handler,
		id:         id,
		pixelRatio: pixelRatio,
		background: RGB(0.3, 0.3, 0.32),
	}
	s.InitWidget(s)
	s.size = size
	s.theme = DefaultTheme()
	// The screen itself always counts as focused so unclaimed clicks on
	// the background never try to focus it.
	s.focused = true
	for _, opt := range opts {
		opt(s)
	}

	s.visible = handler.WindowVisible(id)
	s.lastInteraction = handler.Time()

	handler.AddCursorPosCallback(id, func(x, y float64) {
		s.protect("cursor_pos", func() { s.cursorPosEvent(x, y) })
	})
	handler.AddMouseButtonCallback(id, func(button, action, modifiers int) {
		s.protect("mouse_button", func() { s.mouseButtonDispatch(button, action, modifiers) })
	})
	handler.AddKeyCallback(id, func(key, scancode, action, modifiers int) {
		s.protect("key", func() { s.keyEvent(key, scancode, action, modifiers) })
	})
	handler.AddCharCallback(id, func(codepoint rune) {
		s.protect("char", func() { s.charEvent(codepoint) })
	})
	handler.AddDropCallback(id, func(filenames []string) {
		s.protect("drop", func() { s.dropEvent(filenames) })
	})
	handler.AddScrollCallback(id, func(x, y float64) {
		s.protect("scroll", func() { s.scrollDispatch(x, y) })
	})
	handler.AddFramebufferSizeCallback(id, func(width, height int, pixelRatio float32) {
		s.protect("framebuffer_size", func() { s.resizeEvent(width, height, pixelRatio) })
	})
	return s
}

// protect is the dispatch boundary: a panic escaping the widget tree is
// unrecoverable toolkit state, so it is logged and the process exits.
func (s *Screen) protect(event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			eventLogger.Error("event dispatch panicked",
				"event", event, "screen", s.id, "panic", r)
			osExit(1)
		}
	}()
	fn()
}

// Dispose unregisters the screen's event callbacks and releases the
// renderer. The screen must not be used afterwards.
func (s *Screen) Dispose() {
	s.handler.RemoveCursorPosCallback(s.id)
	s.handler.RemoveMouseButtonCallback(s.id)
	s.handler.RemoveKeyCallback(s.id)
	s.handler.RemoveCharCallback(s.id)
	s.handler.RemoveDropCallback(s.id)
	s.handler.RemoveScrollCallback(s.id)
	s.handler.RemoveFramebufferSizeCallback(s.id)
	if s.renderer != nil {
		s.renderer.Delete()
		s.renderer = nil
	}
}

// Handler returns the input handler the screen is registered with.
func (s *Screen) Handler() *Handler { return s.handler }

// ID returns the screen id used for callback registration.
func (s *Screen) ID() int { return s.id }

// Renderer returns the attached drawing surface, possibly nil.
func (s *Screen) Renderer() Renderer { return s.renderer }

// PixelRatio returns the framebuffer-to-logical scale factor.
func (s *Screen) PixelRatio() float32 { return s.pixelRatio }

// Background returns the clear color.
func (s *Screen) Background() Color { return s.background }

// SetBackground sets the clear color.
func (s *Screen) SetBackground(c Color) { s.background = c }

// MousePos returns the last normalized cursor position.
func (s *Screen) MousePos() Vec2 { return s.mousePos }

// ActiveCursor returns the cursor shape requested by the widget the
// pointer last hovered. The embedding application applies it to the native
// window.
func (s *Screen) ActiveCursor() Cursor { return s.cursor }

// DragActive reports whether a widget currently captures pointer motion.
func (s *Screen) DragActive() bool { return s.dragActive }

// FocusPath returns a copy of the focus chain, leaf first. The screen
// itself is not part of it.
func (s *Screen) FocusPath() []Widget {
	out := make([]Widget, len(s.focusPath))
	copy(out, s.focusPath)
	return out
}

// LastInteraction returns the handler-clock timestamp of the last input
// event.
func (s *Screen) LastInteraction() float64 { return s.lastInteraction }

// TimeSinceInteraction returns seconds elapsed since the last input event.
func (s *Screen) TimeSinceInteraction() float64 {
	return s.handler.Time() - s.lastInteraction
}

// SetResizeCallback replaces the resize notification callback.
func (s *Screen) SetResizeCallback(fn func(size Vec2)) { s.resizeFunc = fn }

// SetDropCallback replaces the file drop callback.
func (s *Screen) SetDropCallback(fn func(filenames []string)) { s.dropFunc = fn }

// SetCursorCalibration replaces the cursor position adjustment.
func (s *Screen) SetCursorCalibration(offset Vec2) { s.calibration = offset }

// ClipboardString returns the native window's clipboard contents.
func (s *Screen) ClipboardString() string {
	return s.handler.Clipboard(s.id)
}

// SetClipboardString stores text in the native window's clipboard.
func (s *Screen) SetClipboardString(text string) {
	s.handler.SetClipboard(s.id, text)
}

// normalizeCoords converts native device coordinates to the logical
// coordinate space widgets live in.
func (s *Screen) normalizeCoords(p Vec2) Vec2 {
	if scaleFramebufferCoords && s.pixelRatio != 0 {
		return p.Div(s.pixelRatio)
	}
	return p
}

func (s *Screen) cursorPosEvent(x, y float64) {
	p := s.normalizeCoords(Vec2{X: float32(x), Y: float32(y)})
	s.lastInteraction = s.handler.Time()
	p = p.Sub(s.calibration)

	handled := false
	if !s.dragActive {
		if w := s.FindWidget(p); w != nil && w.Cursor() != s.cursor {
			s.cursor = w.Cursor()
		}
	} else if s.dragWidget != nil && s.dragWidget.Parent() != nil {
		handled = s.dragWidget.MouseDragEvent(
			p.Sub(s.dragWidget.Parent().AbsolutePosition()), p.Sub(s.mousePos),
			s.mouseState, s.modifiers)
	}
	if !handled {
		s.MouseMotionEvent(p, p.Sub(s.mousePos), s.mouseState, s.modifiers)
	}
	// Recorded last: drag deltas are relative to the previous position.
	s.mousePos = p
}

// modalGateOpen reports whether pointer events at the current cursor
// position may pass. While the focus chain tops out at a modal window,
// events outside that window's bounds are discarded.
func (s *Screen) modalGateOpen() bool {
	if len(s.focusPath) == 0 {
		return true
	}
	outer := s.focusPath[len(s.focusPath)-1]
	if isWindowRole(outer) && outer.Modal() {
		return outer.Contains(s.mousePos)
	}
	return true
}

func (s *Screen) mouseButtonDispatch(button, action, modifiers int) {
	s.modifiers = modifiers
	s.lastInteraction = s.handler.Time()

	if !s.modalGateOpen() {
		return
	}

	codes := s.handler.Codes()
	if action == codes.MousePress {
		s.mouseState |= 1 << uint(button)
	} else {
		s.mouseState &^= 1 << uint(button)
	}

	// A release over a widget other than the drag target still reaches
	// the target, so it can tear down its pressed state.
	dropWidget := s.FindWidget(s.mousePos)
	if s.dragActive && action == codes.MouseRelease &&
		dropWidget != s.dragWidget && s.dragWidget != nil && s.dragWidget.Parent() != nil {
		s.dragWidget.MouseButtonEvent(
			s.mousePos.Sub(s.dragWidget.Parent().AbsolutePosition()),
			button, false, s.modifiers)
	}

	if action == codes.MousePress &&
		(button == codes.PrimaryMouseButton || button == codes.SecondaryMouseButton) {
		s.dragWidget = s.FindWidget(s.mousePos)
		if s.dragWidget == s.self {
			s.dragWidget = nil
		}
		s.dragActive = s.dragWidget != nil
		if !s.dragActive {
			s.UpdateFocus(nil)
		}
	} else {
		s.dragActive = false
		s.dragWidget = nil
	}

	s.MouseButtonEvent(s.mousePos, button, action == codes.MousePress, s.modifiers)
}

func (s *Screen) keyEvent(key, scancode, action, modifiers int) {
	s.lastInteraction = s.handler.Time()
	for _, w := range s.focusPath {
		if w.Focused() && w.KeyboardEvent(key, scancode, action, modifiers) {
			return
		}
	}
}

func (s *Screen) charEvent(codepoint rune) {
	s.lastInteraction = s.handler.Time()
	for _, w := range s.focusPath {
		if w.Focused() && w.KeyboardCharacterEvent(codepoint) {
			return
		}
	}
}

func (s *Screen) dropEvent(filenames []string) {
	if s.dropFunc != nil {
		s.dropFunc(filenames)
	}
}

func (s *Screen) scrollDispatch(x, y float64) {
	s.lastInteraction = s.handler.Time()
	if !s.modalGateOpen() {
		return
	}
	s.ScrollEvent(s.mousePos, Vec2{X: float32(x), Y: float32(y)})
}

func (s *Screen) resizeEvent(width, height int, pixelRatio float32) {
	if width == 0 || height == 0 {
		return
	}
	size := Vec2{X: float32(width), Y: float32(height)}
	if scaleFramebufferCoords && pixelRatio != 0 {
		size = size.Div(pixelRatio)
	}
	s.pixelRatio = pixelRatio
	s.size = size
	s.lastInteraction = s.handler.Time()
	if s.renderer != nil {
		s.renderer.Resize(width, height)
	}
	if s.resizeFunc != nil {
		s.resizeFunc(size)
	}
}

// UpdateFocus moves focus to widget: the old chain is blurred, the chain
// from widget up to (excluding) the screen becomes the new focus path, and
// its members gain focus root first. The nearest enclosing window in the
// new chain is raised. Passing nil clears focus.
func (s *Screen) UpdateFocus(widget Widget) {
	for _, w := range s.focusPath {
		if w.Focused() {
			w.FocusEvent(false)
		}
	}
	s.focusPath = s.focusPath[:0]

	var window Widget
	for widget != nil && widget != s.self {
		s.focusPath = append(s.focusPath, widget)
		if window == nil && isWindowRole(widget) {
			window = widget
		}
		widget = widget.Parent()
	}
	for i := len(s.focusPath) - 1; i >= 0; i-- {
		s.focusPath[i].FocusEvent(true)
	}
	if window != nil {
		s.MoveWindowToFront(window)
	}
}

// MoveWindowToFront raises window to the top of the draw order and then
// re-raises any of its popups stacked below it, repeating until every
// popup (including popups of popups) sits above its owner.
func (s *Screen) MoveWindowToFront(window Widget) {
	found := false
	for i, c := range s.children {
		if c == window {
			s.children = append(s.children[:i], s.children[i+1:]...)
			found = true
			break
		}
	}
	// Nested windows are not part of the top-level order.
	if !found {
		return
	}
	s.children = append(s.children, window)

	for changed := true; changed; {
		changed = false
		base := 0
		for i, c := range s.children {
			if c == window {
				base = i
			}
		}
		for i, c := range s.children {
			if i < base && c.Role() == RolePopup && c.OwnerWindow() == window {
				s.MoveWindowToFront(c)
				changed = true
				break
			}
		}
	}
}

// DisposeWindow detaches window from the screen. Focus held anywhere
// inside it is dropped, as is an in-flight drag it captured.
func (s *Screen) DisposeWindow(window Widget) {
	for _, w := range s.focusPath {
		if w == window {
			s.focusPath = s.focusPath[:0]
			break
		}
	}
	if s.dragWidget == window {
		s.dragWidget = nil
		s.dragActive = false
	}
	s.RemoveChild(window)
}

// CenterWindow centers window on the screen, sizing it to its preferred
// size first when it has none.
func (s *Screen) CenterWindow(window Widget) {
	if window.Size().IsZero() {
		window.SetSize(window.PreferredSize(s.renderer))
		window.PerformLayout(s.renderer)
	}
	half := s.size.Sub(window.Size())
	window.SetPosition(Vec2{X: half.X / 2, Y: half.Y / 2})
}

// DrawAll renders a full frame: background, widget tree, then the hover
// tooltip. It is a no-op without a renderer.
func (s *Screen) DrawAll() error {
	if s.renderer == nil {
		return nil
	}
	s.renderer.BeginFrame(s.size.X, s.size.Y, s.pixelRatio)
	s.renderer.FillRect(Rect{W: s.size.X, H: s.size.Y}, s.background)
	s.Draw(s.renderer)
	s.drawTooltip()
	return s.renderer.EndFrame()
}

// tooltipDelay is how long the pointer must rest before a tooltip shows.
const tooltipDelay = 0.5

func (s *Screen) drawTooltip() {
	if s.TimeSinceInteraction() < tooltipDelay {
		return
	}
	w := s.FindWidget(s.mousePos)
	if w == nil || w == s.self || w.Tooltip() == "" {
		return
	}
	t := s.themeOrDefault()
	bounds := textBounds(s.renderer, t.StandardFontSize, w.Tooltip())
	ap := w.AbsolutePosition()
	pos := Vec2{
		X: ap.X + (w.Size().X-bounds.X)/2,
		Y: ap.Y + w.Size().Y + 8,
	}
	const pad = 4
	s.renderer.FillRect(Rect{
		X: pos.X - pad, Y: pos.Y - pad,
		W: bounds.X + 2*pad, H: bounds.Y + 2*pad,
	}, t.TooltipFillColor)
	s.renderer.Text(pos, t.StandardFontSize, t.TooltipTextColor, w.Tooltip())
}
