package glaze

// WidgetRole identifies how a widget participates in screen-level window
// stacking. It replaces runtime type inspection: the screen never asks
// "is this a *Window", it asks for the role.
type WidgetRole int

const (
	// RoleNone marks an ordinary widget.
	RoleNone WidgetRole = iota
	// RoleWindow marks a top-level window eligible for z-order management
	// and modal gating.
	RoleWindow
	// RolePopup marks a floating panel owned by a window. Popups always
	// stack above their owner.
	RolePopup
)

// isWindowRole reports whether w takes part in window stacking.
func isWindowRole(w Widget) bool {
	r := w.Role()
	return r == RoleWindow || r == RolePopup
}

// Widget is the interface all tree nodes implement. Concrete widgets embed
// BaseWidget, which supplies default behavior for everything, and override
// the event handlers they care about.
//
// Ownership: a parent exclusively owns its children; detaching a subtree
// detaches all its descendants with it.
type Widget interface {
	// Tree structure.
	Parent() Widget
	SetParent(Widget)
	Children() []Widget
	AddChild(Widget)
	RemoveChild(Widget)

	// Geometry.
	Position() Vec2
	SetPosition(Vec2)
	AbsolutePosition() Vec2
	Size() Vec2
	SetSize(Vec2)
	FixedSize() Vec2
	SetFixedSize(Vec2)

	// State flags.
	Visible() bool
	SetVisible(bool)
	Enabled() bool
	SetEnabled(bool)
	Focused() bool
	SetFocused(bool)

	// Appearance.
	Tooltip() string
	SetTooltip(string)
	Cursor() Cursor
	SetCursor(Cursor)
	Theme() *Theme
	SetTheme(*Theme)

	// Layout.
	Layout() Layout
	SetLayout(Layout)
	PreferredSize(r Renderer) Vec2
	PerformLayout(r Renderer)

	// Stacking role (see WidgetRole). Modal and OwnerWindow return their
	// zero values for widgets whose role does not carry them.
	Role() WidgetRole
	Modal() bool
	OwnerWindow() Widget

	// Hit testing. Contains takes a point in the parent's coordinate
	// space; FindWidget returns the deepest visible descendant at the
	// point, the widget itself when no child matches, or nil when the
	// point is outside.
	Contains(p Vec2) bool
	FindWidget(p Vec2) Widget

	// Focus.
	RequestFocus()

	// Drawing.
	Draw(r Renderer)

	// Event handlers. Positions are relative to the receiver's parent;
	// a true return marks the event as handled and stops propagation.
	MouseButtonEvent(p Vec2, button int, down bool, modifiers int) bool
	MouseMotionEvent(p, rel Vec2, buttons, modifiers int) bool
	MouseDragEvent(p, rel Vec2, buttons, modifiers int) bool
	MouseEnterEvent(p Vec2, enter bool) bool
	ScrollEvent(p, rel Vec2) bool
	FocusEvent(focused bool) bool
	KeyboardEvent(key, scancode, action, modifiers int) bool
	KeyboardCharacterEvent(codepoint rune) bool
}

// BaseWidget is the canonical Widget implementation. Concrete widgets embed
// it and call InitWidget with themselves so that tree links and hit-test
// results carry the outer type, not the embedded base.
type BaseWidget struct {
	self     Widget
	parent   Widget
	children []Widget
	layout   Layout
	theme    *Theme

	pos       Vec2
	size      Vec2
	fixedSize Vec2

	visible    bool
	enabled    bool
	focused    bool
	mouseFocus bool

	tooltip string
	cursor  Cursor
}

// NewWidget creates a plain container widget attached to parent (which may
// be nil).
func NewWidget(parent Widget) *BaseWidget {
	w := &BaseWidget{}
	w.InitWidget(w)
	if parent != nil {
		parent.AddChild(w)
	}
	return w
}

// InitWidget records the widget's outer identity and applies defaults.
// Constructors of embedding types must call it before attaching the widget
// to a tree.
func (b *BaseWidget) InitWidget(self Widget) {
	b.self = self
	b.visible = true
	b.enabled = true
	b.cursor = CursorArrow
}

// Parent returns the parent widget, or nil for a root.
func (b *BaseWidget) Parent() Widget { return b.parent }

// SetParent sets the parent back-reference. Called by AddChild; widgets
// rarely call it directly.
func (b *BaseWidget) SetParent(parent Widget) { b.parent = parent }

// Children returns the child sequence. Order is paint order: later
// children draw in front.
func (b *BaseWidget) Children() []Widget { return b.children }

// AddChild appends child to the child sequence and wires its parent link.
// The child inherits this widget's theme when it has none.
func (b *BaseWidget) AddChild(child Widget) {
	b.children = append(b.children, child)
	child.SetParent(b.self)
	if child.Theme() == nil && b.theme != nil {
		child.SetTheme(b.theme)
	}
}

// RemoveChild detaches child from the child sequence. The caller keeps
// responsibility for the detached subtree.
func (b *BaseWidget) RemoveChild(child Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.SetParent(nil)
			return
		}
	}
}

// Position returns the position relative to the parent.
func (b *BaseWidget) Position() Vec2 { return b.pos }

// SetPosition sets the position relative to the parent.
func (b *BaseWidget) SetPosition(p Vec2) { b.pos = p }

// AbsolutePosition returns the position in screen coordinates.
func (b *BaseWidget) AbsolutePosition() Vec2 {
	if b.parent != nil {
		return b.parent.AbsolutePosition().Add(b.pos)
	}
	return b.pos
}

// Size returns the widget size.
func (b *BaseWidget) Size() Vec2 { return b.size }

// SetSize sets the widget size.
func (b *BaseWidget) SetSize(s Vec2) { b.size = s }

// FixedSize returns the fixed size override (zero components mean
// unconstrained).
func (b *BaseWidget) FixedSize() Vec2 { return b.fixedSize }

// SetFixedSize overrides the layout-computed size per axis; a zero
// component leaves that axis to the layout.
func (b *BaseWidget) SetFixedSize(s Vec2) { b.fixedSize = s }

// Visible reports whether the widget is drawn and hit-testable. It does
// not check ancestors; an invisible parent hides its subtree regardless.
func (b *BaseWidget) Visible() bool { return b.visible }

// SetVisible shows or hides the widget.
func (b *BaseWidget) SetVisible(v bool) { b.visible = v }

// Enabled reports whether the widget accepts interaction.
func (b *BaseWidget) Enabled() bool { return b.enabled }

// SetEnabled enables or disables interaction.
func (b *BaseWidget) SetEnabled(e bool) { b.enabled = e }

// Focused reports whether the widget is on the screen's focus path.
func (b *BaseWidget) Focused() bool { return b.focused }

// SetFocused sets the focus flag without notifying anyone. Use
// RequestFocus to change focus properly.
func (b *BaseWidget) SetFocused(f bool) { b.focused = f }

// Tooltip returns the tooltip text.
func (b *BaseWidget) Tooltip() string { return b.tooltip }

// SetTooltip sets the tooltip text shown after the hover delay.
func (b *BaseWidget) SetTooltip(t string) { b.tooltip = t }

// Cursor returns the cursor shape shown while the pointer hovers this
// widget.
func (b *BaseWidget) Cursor() Cursor { return b.cursor }

// SetCursor sets the hover cursor shape.
func (b *BaseWidget) SetCursor(c Cursor) { b.cursor = c }

// Theme returns the widget's theme, possibly nil before attachment.
func (b *BaseWidget) Theme() *Theme { return b.theme }

// SetTheme sets the theme on this widget and on every child that still
// shares the old one.
func (b *BaseWidget) SetTheme(t *Theme) {
	old := b.theme
	b.theme = t
	for _, c := range b.children {
		if c.Theme() == old {
			c.SetTheme(t)
		}
	}
}

// themeOrDefault never returns nil.
func (b *BaseWidget) themeOrDefault() *Theme {
	if b.theme != nil {
		return b.theme
	}
	return DefaultTheme()
}

// Layout returns the layout responsible for child placement, or nil.
func (b *BaseWidget) Layout() Layout { return b.layout }

// SetLayout sets the child placement strategy.
func (b *BaseWidget) SetLayout(l Layout) { b.layout = l }

// PreferredSize returns the size the widget wants; the default delegates
// to the layout, falling back to the current size.
func (b *BaseWidget) PreferredSize(r Renderer) Vec2 {
	if b.layout != nil {
		return b.layout.PreferredSize(r, b.self)
	}
	return b.size
}

// PerformLayout sizes and positions children. Without a layout each child
// gets its fixed size where set, otherwise its preferred size.
func (b *BaseWidget) PerformLayout(r Renderer) {
	if b.layout != nil {
		b.layout.PerformLayout(r, b.self)
		return
	}
	for _, c := range b.children {
		pref, fix := c.PreferredSize(r), c.FixedSize()
		size := pref
		if fix.X > 0 {
			size.X = fix.X
		}
		if fix.Y > 0 {
			size.Y = fix.Y
		}
		c.SetSize(size)
		c.PerformLayout(r)
	}
}

// Role marks ordinary widgets; Window and Popup override it.
func (b *BaseWidget) Role() WidgetRole { return RoleNone }

// Modal is false for every widget that is not a modal window.
func (b *BaseWidget) Modal() bool { return false }

// OwnerWindow is nil for everything but popups.
func (b *BaseWidget) OwnerWindow() Widget { return nil }

// Contains reports whether p, given in the parent's coordinate space, lies
// inside the widget's bounds.
func (b *BaseWidget) Contains(p Vec2) bool {
	d := p.Sub(b.pos)
	return d.X >= 0 && d.Y >= 0 && d.X <= b.size.X && d.Y <= b.size.Y
}

// FindWidget walks the subtree for the deepest visible widget at p.
// Children are checked front-to-back so overlapping siblings resolve to
// the one painted on top.
func (b *BaseWidget) FindWidget(p Vec2) Widget {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if child.Visible() && child.Contains(p.Sub(b.pos)) {
			return child.FindWidget(p.Sub(b.pos))
		}
	}
	if b.Contains(p) {
		return b.self
	}
	return nil
}

// RequestFocus moves the owning screen's focus to this widget.
func (b *BaseWidget) RequestFocus() {
	if s := b.OwningScreen(); s != nil {
		s.UpdateFocus(b.self)
	}
}

// OwningScreen walks the parent chain to the screen this widget is
// attached to, or nil for a detached subtree.
func (b *BaseWidget) OwningScreen() *Screen {
	w := b.self
	for w != nil {
		if s, ok := w.(*Screen); ok {
			return s
		}
		w = w.Parent()
	}
	return nil
}

// Draw paints the visible children in paint order.
func (b *BaseWidget) Draw(r Renderer) {
	for _, c := range b.children {
		if c.Visible() {
			c.Draw(r)
		}
	}
}

// MouseButtonEvent routes the press to the child under p, front to back.
// An unclaimed primary press focuses the widget itself.
func (b *BaseWidget) MouseButtonEvent(p Vec2, button int, down bool, modifiers int) bool {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if child.Visible() && child.Contains(p.Sub(b.pos)) &&
			child.MouseButtonEvent(p.Sub(b.pos), button, down, modifiers) {
			return true
		}
	}
	if down && !b.focused {
		if s := b.OwningScreen(); s != nil && button == s.handler.Codes().PrimaryMouseButton {
			b.RequestFocus()
		}
	}
	return false
}

// MouseMotionEvent forwards motion to children the pointer is in or just
// left, generating enter/leave notifications on boundary crossings.
func (b *BaseWidget) MouseMotionEvent(p, rel Vec2, buttons, modifiers int) bool {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.Visible() {
			continue
		}
		contained := child.Contains(p.Sub(b.pos))
		prevContained := child.Contains(p.Sub(b.pos).Sub(rel))
		if contained != prevContained {
			child.MouseEnterEvent(p, contained)
		}
		if (contained || prevContained) &&
			child.MouseMotionEvent(p.Sub(b.pos), rel, buttons, modifiers) {
			return true
		}
	}
	return false
}

// MouseDragEvent is ignored by default; widgets that capture drags
// override it.
func (b *BaseWidget) MouseDragEvent(p, rel Vec2, buttons, modifiers int) bool {
	return false
}

// MouseEnterEvent records hover state.
func (b *BaseWidget) MouseEnterEvent(p Vec2, enter bool) bool {
	b.mouseFocus = enter
	return false
}

// ScrollEvent routes the scroll to the child under p, front to back.
func (b *BaseWidget) ScrollEvent(p, rel Vec2) bool {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if child.Visible() && child.Contains(p.Sub(b.pos)) &&
			child.ScrollEvent(p.Sub(b.pos), rel) {
			return true
		}
	}
	return false
}

// FocusEvent records the focus flag change.
func (b *BaseWidget) FocusEvent(focused bool) bool {
	b.focused = focused
	return false
}

// KeyboardEvent is ignored by default.
func (b *BaseWidget) KeyboardEvent(key, scancode, action, modifiers int) bool {
	return false
}

// KeyboardCharacterEvent is ignored by default.
func (b *BaseWidget) KeyboardCharacterEvent(codepoint rune) bool {
	return false
}
