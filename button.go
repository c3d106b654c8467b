package glaze

// Button is a push button firing a callback on release.
type Button struct {
	BaseWidget
	caption  string
	pushed   bool
	callback func()
}

// NewButton creates a button with the given caption.
func NewButton(parent Widget, caption string) *Button {
	b := &Button{caption: caption}
	b.InitWidget(b)
	if parent != nil {
		parent.AddChild(b)
	}
	return b
}

// Caption returns the button text.
func (b *Button) Caption() string { return b.caption }

// SetCaption sets the button text.
func (b *Button) SetCaption(caption string) { b.caption = caption }

// SetCallback sets the function invoked when the button is released while
// pushed.
func (b *Button) SetCallback(fn func()) { b.callback = fn }

// Pushed reports whether the button is currently held down.
func (b *Button) Pushed() bool { return b.pushed }

// PreferredSize pads the caption bounds.
func (b *Button) PreferredSize(r Renderer) Vec2 {
	bounds := textBounds(r, b.themeOrDefault().ButtonFontSize, b.caption)
	return Vec2{X: bounds.X + 20, Y: bounds.Y + 10}
}

// MouseButtonEvent tracks the pushed state on the primary button and fires
// the callback when the press completes inside the button.
func (b *Button) MouseButtonEvent(p Vec2, button int, down bool, modifiers int) bool {
	if b.BaseWidget.MouseButtonEvent(p, button, down, modifiers) {
		return true
	}
	s := b.OwningScreen()
	if s == nil || button != s.handler.Codes().PrimaryMouseButton || !b.enabled {
		return false
	}
	if down {
		b.pushed = true
	} else if b.pushed {
		b.pushed = false
		if b.Contains(p) && b.callback != nil {
			b.callback()
		}
	}
	return true
}

// Draw paints the body, border and centered caption.
func (b *Button) Draw(r Renderer) {
	t := b.themeOrDefault()
	ap := b.AbsolutePosition()
	body := Rect{X: ap.X, Y: ap.Y, W: b.size.X, H: b.size.Y}

	fill := t.ButtonColor
	if b.pushed {
		fill = t.ButtonPressedColor
	}
	r.FillRect(body, fill)
	r.StrokeRect(body, t.ButtonBorderWidth, t.ButtonBorderColor)

	color := t.TextColor
	if !b.enabled {
		color = t.DisabledTextColor
	}
	bounds := textBounds(r, t.ButtonFontSize, b.caption)
	r.Text(Vec2{
		X: body.X + (body.W-bounds.X)/2,
		Y: body.Y + (body.H-bounds.Y)/2,
	}, t.ButtonFontSize, color, b.caption)

	b.BaseWidget.Draw(r)
}
