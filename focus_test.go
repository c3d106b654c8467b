package glaze

import "testing"

func TestUpdateFocusPathLeafFirst(t *testing.T) {
	s, _, _ := newTestScreen()

	win := NewWindow(s, "w")
	panel := NewWidget(win)
	leaf := newRecordWidget(panel)

	s.UpdateFocus(leaf)

	path := s.FocusPath()
	if len(path) != 3 {
		t.Fatalf("Expected focus path of 3 entries, got %d", len(path))
	}
	if path[0] != Widget(leaf) || path[1] != Widget(panel) || path[2] != Widget(win) {
		t.Error("Expected leaf-first path [leaf panel window]")
	}
	for i, w := range path {
		if w == Widget(s) {
			t.Errorf("Expected the screen excluded from the focus path, found at %d", i)
		}
		if !w.Focused() {
			t.Errorf("Expected every path entry focused, entry %d is not", i)
		}
	}
}

func TestUpdateFocusNotifiesExactlyOnce(t *testing.T) {
	s, _, _ := newTestScreen()

	first := newRecordWidget(s)
	second := newRecordWidget(s)

	s.UpdateFocus(first)
	if first.focusGained != 1 {
		t.Errorf("Expected one focus gain, got %d", first.focusGained)
	}

	s.UpdateFocus(second)
	if first.focusLost != 1 {
		t.Errorf("Expected one blur on the old holder, got %d", first.focusLost)
	}
	if second.focusGained != 1 {
		t.Errorf("Expected one focus gain on the new holder, got %d", second.focusGained)
	}

	s.UpdateFocus(nil)
	if second.focusLost != 1 {
		t.Errorf("Expected one blur after clearing focus, got %d", second.focusLost)
	}
	if len(s.FocusPath()) != 0 {
		t.Errorf("Expected empty focus path, got %d entries", len(s.FocusPath()))
	}
}

func TestUpdateFocusGainOrderRootFirst(t *testing.T) {
	s, _, _ := newTestScreen()

	var order []string
	outer := &orderWidget{name: "outer", order: &order}
	outer.InitWidget(outer)
	s.AddChild(outer)
	inner := &orderWidget{name: "inner", order: &order}
	inner.InitWidget(inner)
	outer.AddChild(inner)

	s.UpdateFocus(inner)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("Expected gain notifications root first [outer inner], got %v", order)
	}
}

type orderWidget struct {
	BaseWidget
	name  string
	order *[]string
}

func (w *orderWidget) FocusEvent(focused bool) bool {
	if focused {
		*w.order = append(*w.order, w.name)
	}
	return w.BaseWidget.FocusEvent(focused)
}

func TestFocusInsideWindowRaisesIt(t *testing.T) {
	s, _, _ := newTestScreen()

	first := NewWindow(s, "first")
	NewWindow(s, "second")
	inside := newRecordWidget(first)

	s.UpdateFocus(inside)

	children := s.Children()
	if children[len(children)-1] != Widget(first) {
		t.Error("Expected the focused widget's window raised to the front")
	}
}

func TestFocusTakesNearestWindowAncestor(t *testing.T) {
	s, _, _ := newTestScreen()

	outer := NewWindow(s, "outer")
	nested := NewWindow(outer, "nested")
	leaf := newRecordWidget(nested)
	other := NewWindow(s, "other")

	s.UpdateFocus(leaf)

	path := s.FocusPath()
	if len(path) != 3 || path[1] != Widget(nested) || path[2] != Widget(outer) {
		t.Fatalf("Expected path [leaf nested outer], got %d entries", len(path))
	}

	// The nearest window-role ancestor (nested) is not a top-level child;
	// raising it must not disturb the top-level order.
	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("Expected 2 top-level children, got %d", len(children))
	}
	if children[0] != Widget(outer) || children[1] != Widget(other) {
		t.Error("Expected top-level order unchanged for a nested window focus")
	}
}

func TestClickOnBackgroundClearsFocus(t *testing.T) {
	s, h, _ := newTestScreen()

	w := newRecordWidget(s)
	placeWidget(w, 100, 100, 50, 50)
	s.UpdateFocus(w)

	// Press the primary button over empty background.
	h.HandleCursorPosEvent(testScreenID, 500, 500)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)

	if len(s.FocusPath()) != 0 {
		t.Errorf("Expected focus cleared by a background click, got %d entries", len(s.FocusPath()))
	}
	if w.focusLost != 1 {
		t.Errorf("Expected the old holder blurred once, got %d", w.focusLost)
	}
}

func TestRequestFocusRoutesThroughScreen(t *testing.T) {
	s, _, _ := newTestScreen()

	w := newRecordWidget(s)
	w.RequestFocus()

	if !w.Focused() {
		t.Error("Expected RequestFocus to focus the widget")
	}
	if path := s.FocusPath(); len(path) != 1 || path[0] != Widget(w) {
		t.Error("Expected the widget on the focus path")
	}
}
