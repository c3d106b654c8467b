package glaze

import "testing"

func TestBoxLayoutVerticalStacking(t *testing.T) {
	s, _, _ := newTestScreen()

	panel := NewWidget(s)
	panel.SetLayout(NewBoxLayout(Vertical, AlignMinimum, 10, 5))
	a := NewWidget(panel)
	a.SetFixedSize(Vec2{X: 100, Y: 30})
	b := NewWidget(panel)
	b.SetFixedSize(Vec2{X: 80, Y: 40})

	panel.SetSize(panel.PreferredSize(nil))
	panel.PerformLayout(nil)

	if pos := a.Position(); pos.X != 10 || pos.Y != 10 {
		t.Errorf("Expected first child at (10, 10), got (%f, %f)", pos.X, pos.Y)
	}
	if pos := b.Position(); pos.X != 10 || pos.Y != 45 {
		t.Errorf("Expected second child at (10, 45), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestBoxLayoutPreferredSize(t *testing.T) {
	panel := NewWidget(nil)
	panel.SetLayout(NewBoxLayout(Horizontal, AlignMinimum, 5, 4))
	a := NewWidget(panel)
	a.SetFixedSize(Vec2{X: 100, Y: 30})
	b := NewWidget(panel)
	b.SetFixedSize(Vec2{X: 60, Y: 50})

	size := panel.PreferredSize(nil)

	// Main axis: 100 + 4 + 60 + margins; cross axis: max(30, 50) + margins.
	if size.X != 174 || size.Y != 60 {
		t.Errorf("Expected preferred size (174, 60), got (%f, %f)", size.X, size.Y)
	}
}

func TestBoxLayoutSkipsInvisible(t *testing.T) {
	panel := NewWidget(nil)
	panel.SetLayout(NewBoxLayout(Vertical, AlignMinimum, 0, 10))
	a := NewWidget(panel)
	a.SetFixedSize(Vec2{X: 50, Y: 20})
	hidden := NewWidget(panel)
	hidden.SetFixedSize(Vec2{X: 50, Y: 20})
	hidden.SetVisible(false)
	b := NewWidget(panel)
	b.SetFixedSize(Vec2{X: 50, Y: 20})

	panel.SetSize(panel.PreferredSize(nil))
	panel.PerformLayout(nil)

	if pos := b.Position(); pos.Y != 30 {
		t.Errorf("Expected second visible child at y=30, got %f", pos.Y)
	}
	if size := panel.Size(); size.Y != 50 {
		t.Errorf("Expected panel height 50 without the hidden child, got %f", size.Y)
	}
}

func TestBoxLayoutAlignFill(t *testing.T) {
	panel := NewWidget(nil)
	panel.SetLayout(NewBoxLayout(Vertical, AlignFill, 5, 0))
	child := NewWidget(panel)
	child.SetFixedSize(Vec2{X: 40, Y: 20})

	panel.SetSize(Vec2{X: 200, Y: 100})
	panel.PerformLayout(nil)

	if size := child.Size(); size.X != 190 {
		t.Errorf("Expected the child stretched to 190 wide, got %f", size.X)
	}
}

func TestLayoutDefaultsToPreferredSizes(t *testing.T) {
	parent := NewWidget(nil)
	child := NewWidget(parent)
	child.SetFixedSize(Vec2{X: 70, Y: 35})

	parent.PerformLayout(nil)

	if size := child.Size(); size.X != 70 || size.Y != 35 {
		t.Errorf("Expected the child sized to its fixed size, got (%f, %f)", size.X, size.Y)
	}
}
