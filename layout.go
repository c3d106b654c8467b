package glaze

// Orientation selects the main axis of a BoxLayout.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Alignment positions children along the cross axis of a BoxLayout.
type Alignment int

const (
	AlignMinimum Alignment = iota
	AlignMiddle
	AlignMaximum
	AlignFill
)

// Layout computes child sizes and positions for a widget. Implementations
// read only the widget's children and fixed-size overrides.
type Layout interface {
	// PreferredSize returns the size w wants in order to fit its children.
	PreferredSize(r Renderer, w Widget) Vec2

	// PerformLayout sets the size and position of every child of w.
	PerformLayout(r Renderer, w Widget)
}

// BoxLayout stacks children along one axis with uniform spacing, aligning
// them on the other axis.
type BoxLayout struct {
	orientation Orientation
	alignment   Alignment
	margin      float32
	spacing     float32
}

// NewBoxLayout creates a box layout. Margin pads all four edges; spacing
// separates consecutive children.
func NewBoxLayout(orientation Orientation, alignment Alignment, margin, spacing float32) *BoxLayout {
	return &BoxLayout{
		orientation: orientation,
		alignment:   alignment,
		margin:      margin,
		spacing:     spacing,
	}
}

// axes returns the main and cross axis selectors for the orientation.
func (l *BoxLayout) axes(v Vec2) (main, cross float32) {
	if l.orientation == Horizontal {
		return v.X, v.Y
	}
	return v.Y, v.X
}

func (l *BoxLayout) compose(main, cross float32) Vec2 {
	if l.orientation == Horizontal {
		return Vec2{X: main, Y: cross}
	}
	return Vec2{X: cross, Y: main}
}

// childSize resolves a child's target size from its preferred size and
// per-axis fixed overrides.
func childSize(r Renderer, c Widget) Vec2 {
	size, fix := c.PreferredSize(r), c.FixedSize()
	if fix.X > 0 {
		size.X = fix.X
	}
	if fix.Y > 0 {
		size.Y = fix.Y
	}
	return size
}

// PreferredSize sums child extents along the main axis and takes the
// maximum along the cross axis.
func (l *BoxLayout) PreferredSize(r Renderer, w Widget) Vec2 {
	var main, cross float32
	visible := 0
	for _, c := range w.Children() {
		if !c.Visible() {
			continue
		}
		m, x := l.axes(childSize(r, c))
		main += m
		cross = maxf(cross, x)
		visible++
	}
	if visible > 1 {
		main += l.spacing * float32(visible-1)
	}
	return l.compose(main+2*l.margin, cross+2*l.margin)
}

// PerformLayout places children one after another from the margin,
// aligning each on the cross axis inside w's bounds.
func (l *BoxLayout) PerformLayout(r Renderer, w Widget) {
	_, crossAvail := l.axes(w.Size())
	crossAvail -= 2 * l.margin

	offset := l.margin
	for _, c := range w.Children() {
		if !c.Visible() {
			continue
		}
		size := childSize(r, c)
		main, cross := l.axes(size)

		crossPos := l.margin
		switch l.alignment {
		case AlignMiddle:
			crossPos += (crossAvail - cross) / 2
		case AlignMaximum:
			crossPos += crossAvail - cross
		case AlignFill:
			cross = crossAvail
		}

		c.SetPosition(l.compose(offset, crossPos))
		c.SetSize(l.compose(main, cross))
		c.PerformLayout(r)
		offset += main + l.spacing
	}
}
