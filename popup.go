package glaze

// Popup is a borderless floating panel anchored to an owner window. It is
// attached directly to the screen so it can extend past the owner's bounds,
// and the screen's z-order management keeps it stacked above its owner.
type Popup struct {
	Window
	owner        Widget
	anchorPos    Vec2
	anchorHeight float32
}

// NewPopup creates a popup attached to parent (normally a *Screen) and
// anchored to owner, the window or widget that spawned it.
func NewPopup(parent, owner Widget) *Popup {
	p := &Popup{owner: owner, anchorHeight: 30}
	p.InitWidget(p)
	if parent != nil {
		parent.AddChild(p)
	}
	return p
}

// Role marks the widget as a popup for z-order purposes.
func (p *Popup) Role() WidgetRole { return RolePopup }

// OwnerWindow returns the widget this popup is anchored to.
func (p *Popup) OwnerWindow() Widget { return p.owner }

// AnchorPos returns the anchor point relative to the owner's origin.
func (p *Popup) AnchorPos() Vec2 { return p.anchorPos }

// SetAnchorPos sets the anchor point relative to the owner's origin.
func (p *Popup) SetAnchorPos(pos Vec2) { p.anchorPos = pos }

// AnchorHeight returns the vertical offset between the anchor point and
// the popup's top edge.
func (p *Popup) AnchorHeight() float32 { return p.anchorHeight }

// SetAnchorHeight sets the vertical anchor offset.
func (p *Popup) SetAnchorHeight(h float32) { p.anchorHeight = h }

// RefreshRelativePlacement repositions the popup to follow its owner and
// hides it while the owner is hidden.
func (p *Popup) RefreshRelativePlacement() {
	if p.owner == nil {
		return
	}
	p.visible = p.visible && p.owner.Visible()
	p.pos = p.owner.Position().Add(p.anchorPos).Sub(Vec2{Y: p.anchorHeight})
}

// PerformLayout re-anchors before laying out content.
func (p *Popup) PerformLayout(r Renderer) {
	p.RefreshRelativePlacement()
	p.BaseWidget.PerformLayout(r)
}

// Draw re-anchors, then paints the panel and its content.
func (p *Popup) Draw(r Renderer) {
	p.RefreshRelativePlacement()
	if !p.visible {
		return
	}
	t := p.themeOrDefault()
	ap := p.AbsolutePosition()
	body := Rect{X: ap.X, Y: ap.Y, W: p.size.X, H: p.size.Y}

	r.FillRect(Rect{X: body.X + 2, Y: body.Y + 2, W: body.W, H: body.H}, t.DropShadowColor)
	r.FillRect(body, t.WindowFillColor)
	r.StrokeRect(body, t.WindowBorderWidth, t.WindowBorderColor)

	p.BaseWidget.Draw(r)
}
