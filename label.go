package glaze

// Label displays a single line of static text.
type Label struct {
	BaseWidget
	caption  string
	fontSize float32
	color    Color
	hasColor bool
}

// NewLabel creates a label showing caption at the theme's standard font
// size.
func NewLabel(parent Widget, caption string) *Label {
	l := &Label{caption: caption}
	l.InitWidget(l)
	if parent != nil {
		parent.AddChild(l)
	}
	return l
}

// Caption returns the label text.
func (l *Label) Caption() string { return l.caption }

// SetCaption sets the label text.
func (l *Label) SetCaption(caption string) { l.caption = caption }

// SetFontSize overrides the theme font size; zero restores it.
func (l *Label) SetFontSize(size float32) { l.fontSize = size }

// SetColor overrides the theme text color.
func (l *Label) SetColor(c Color) {
	l.color = c
	l.hasColor = true
}

func (l *Label) effectiveFontSize() float32 {
	if l.fontSize > 0 {
		return l.fontSize
	}
	return l.themeOrDefault().StandardFontSize
}

// PreferredSize measures the caption.
func (l *Label) PreferredSize(r Renderer) Vec2 {
	if l.caption == "" {
		return Vec2{}
	}
	return textBounds(r, l.effectiveFontSize(), l.caption)
}

// Draw paints the caption.
func (l *Label) Draw(r Renderer) {
	color := l.themeOrDefault().TextColor
	if l.hasColor {
		color = l.color
	}
	r.Text(l.AbsolutePosition(), l.effectiveFontSize(), color, l.caption)
	l.BaseWidget.Draw(r)
}
