package glaze

// Window is a draggable top-level panel with a title header. Windows live
// directly under the screen and take part in z-order management: focusing
// anything inside a window brings it to the front.
type Window struct {
	BaseWidget
	title string
	modal bool
	drag  bool
}

// WindowOption configures a Window at construction.
type WindowOption func(*Window)

// AsModal makes the window modal: while it is focused, pointer events
// outside its bounds are discarded.
func AsModal() WindowOption {
	return func(w *Window) { w.modal = true }
}

// NewWindow creates a window with the given title attached to parent,
// normally a *Screen.
func NewWindow(parent Widget, title string, opts ...WindowOption) *Window {
	w := &Window{title: title}
	w.InitWidget(w)
	for _, opt := range opts {
		opt(w)
	}
	if parent != nil {
		parent.AddChild(w)
	}
	return w
}

// Role marks the widget as a managed top-level window.
func (w *Window) Role() WidgetRole { return RoleWindow }

// Modal reports whether the window gates pointer events to its bounds.
func (w *Window) Modal() bool { return w.modal }

// SetModal toggles modal gating.
func (w *Window) SetModal(modal bool) { w.modal = modal }

// Title returns the header text.
func (w *Window) Title() string { return w.title }

// SetTitle sets the header text.
func (w *Window) SetTitle(title string) { w.title = title }

func (w *Window) headerHeight() float32 {
	if w.title == "" {
		return 0
	}
	return w.themeOrDefault().WindowHeaderHeight
}

// Center positions the window in the middle of its screen.
func (w *Window) Center() {
	if s := w.OwningScreen(); s != nil {
		s.CenterWindow(w.self)
	}
}

// Dispose detaches the window from its screen, dropping any focus it held.
func (w *Window) Dispose() {
	if s := w.OwningScreen(); s != nil {
		s.DisposeWindow(w.self)
	}
}

// PreferredSize accommodates both the content and the title text.
func (w *Window) PreferredSize(r Renderer) Vec2 {
	size := w.BaseWidget.PreferredSize(r)
	if w.title == "" {
		return size
	}
	t := w.themeOrDefault()
	bounds := textBounds(r, t.StandardFontSize+2, w.title)
	return Vec2{
		X: maxf(size.X, bounds.X+20),
		Y: maxf(size.Y, bounds.Y+t.WindowHeaderHeight),
	}
}

// MouseButtonEvent starts or ends a header drag on the primary button when
// no child claims the press.
func (w *Window) MouseButtonEvent(p Vec2, button int, down bool, modifiers int) bool {
	if w.BaseWidget.MouseButtonEvent(p, button, down, modifiers) {
		return true
	}
	if s := w.OwningScreen(); s != nil && button == s.handler.Codes().PrimaryMouseButton {
		w.drag = down && p.Y-w.pos.Y < w.headerHeight()
		return true
	}
	return false
}

// MouseDragEvent moves the window with the pointer while a header drag is
// active, keeping it inside the parent.
func (w *Window) MouseDragEvent(p, rel Vec2, buttons, modifiers int) bool {
	if s := w.OwningScreen(); w.drag && s != nil &&
		buttons&(1<<uint(s.handler.Codes().PrimaryMouseButton)) != 0 {
		w.pos = w.pos.Add(rel)
		if w.parent != nil {
			limit := w.parent.Size().Sub(w.size)
			w.pos = Vec2{
				X: clampf(w.pos.X, 0, maxf(limit.X, 0)),
				Y: clampf(w.pos.Y, 0, maxf(limit.Y, 0)),
			}
		}
		return true
	}
	return false
}

// ScrollEvent consumes scrolls over the window so they do not reach
// widgets stacked underneath it.
func (w *Window) ScrollEvent(p, rel Vec2) bool {
	w.BaseWidget.ScrollEvent(p, rel)
	return true
}

// Draw paints the window body, border, header and title, then the content.
func (w *Window) Draw(r Renderer) {
	t := w.themeOrDefault()
	ap := w.AbsolutePosition()
	body := Rect{X: ap.X, Y: ap.Y, W: w.size.X, H: w.size.Y}

	r.FillRect(Rect{X: body.X + 2, Y: body.Y + 2, W: body.W, H: body.H}, t.DropShadowColor)
	r.FillRect(body, t.WindowFillColor)
	if hh := w.headerHeight(); hh > 0 {
		r.FillRect(Rect{X: body.X, Y: body.Y, W: body.W, H: hh}, t.WindowHeaderColor)
		fontSize := t.StandardFontSize + 2
		bounds := textBounds(r, fontSize, w.title)
		r.Text(Vec2{
			X: body.X + (body.W-bounds.X)/2,
			Y: body.Y + (hh-bounds.Y)/2,
		}, fontSize, t.WindowTitleColor, w.title)
	}
	r.StrokeRect(body, t.WindowBorderWidth, t.WindowBorderColor)

	w.BaseWidget.Draw(r)
}
