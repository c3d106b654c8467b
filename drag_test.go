package glaze

import "testing"

func TestPrimaryPressCapturesDrag(t *testing.T) {
	s, h, _ := newTestScreen()

	w := newRecordWidget(s)
	placeWidget(w, 100, 100, 50, 50)

	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)

	if !s.DragActive() {
		t.Fatal("Expected a primary press over a widget to start a drag")
	}
	if s.dragWidget != Widget(w) {
		t.Error("Expected the hit widget captured as drag target")
	}
}

func TestSecondaryPressCapturesDrag(t *testing.T) {
	s, h, _ := newTestScreen()

	w := newRecordWidget(s)
	placeWidget(w, 100, 100, 50, 50)

	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.SecondaryMouseButton, testCodes.MousePress, 0)

	if !s.DragActive() {
		t.Error("Expected a secondary press over a widget to start a drag")
	}
}

func TestOtherButtonPressClearsDrag(t *testing.T) {
	s, h, _ := newTestScreen()

	w := newRecordWidget(s)
	placeWidget(w, 100, 100, 50, 50)

	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)
	// A middle button press unconditionally cancels the capture.
	h.HandleMouseButtonEvent(testScreenID, 2, testCodes.MousePress, 0)

	if s.DragActive() {
		t.Error("Expected a non-capture button press to clear the drag")
	}
}

func TestDragDeltaRelativeToPreviousPosition(t *testing.T) {
	s, h, _ := newTestScreen()

	w := newRecordWidget(s)
	placeWidget(w, 100, 100, 50, 50)

	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)

	h.HandleCursorPosEvent(testScreenID, 130, 125)
	if w.lastDragRel.X != 10 || w.lastDragRel.Y != 5 {
		t.Errorf("Expected first drag delta (10, 5), got (%f, %f)", w.lastDragRel.X, w.lastDragRel.Y)
	}

	h.HandleCursorPosEvent(testScreenID, 127, 128)
	if w.lastDragRel.X != -3 || w.lastDragRel.Y != 3 {
		t.Errorf("Expected second drag delta (-3, 3), got (%f, %f)", w.lastDragRel.X, w.lastDragRel.Y)
	}
	if w.dragEvents != 2 {
		t.Errorf("Expected 2 drag events, got %d", w.dragEvents)
	}
}

func TestDragPositionInParentSpace(t *testing.T) {
	s, h, _ := newTestScreen()

	panel := NewWidget(s)
	placeWidget(panel, 50, 50, 300, 300)
	w := newRecordWidget(panel)
	placeWidget(w, 50, 50, 50, 50)

	// Widget spans absolute 100..150; press inside and drag.
	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)
	h.HandleCursorPosEvent(testScreenID, 130, 130)

	// Drag positions are relative to the capture widget's parent.
	if w.lastDragPos.X != 80 || w.lastDragPos.Y != 80 {
		t.Errorf("Expected drag position (80, 80) in parent space, got (%f, %f)",
			w.lastDragPos.X, w.lastDragPos.Y)
	}
}

func TestReleaseOverOtherWidgetNotifiesDragTarget(t *testing.T) {
	s, h, _ := newTestScreen()

	a := newRecordWidget(s)
	placeWidget(a, 100, 100, 50, 50)
	b := newRecordWidget(s)
	placeWidget(b, 300, 100, 50, 50)

	h.HandleCursorPosEvent(testScreenID, 120, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)

	// Move over the other widget and release there.
	h.HandleCursorPosEvent(testScreenID, 320, 120)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MouseRelease, 0)

	// a gets the press, then a synthetic release despite the cursor being
	// over b, then b gets the routed release.
	wantA := []string{"press", "drag", "release"}
	if len(a.events) != 3 || a.events[0] != wantA[0] || a.events[1] != wantA[1] || a.events[2] != wantA[2] {
		t.Errorf("Expected drag target events %v, got %v", wantA, a.events)
	}
	if len(b.events) != 1 || b.events[0] != "release" {
		t.Errorf("Expected drop widget to see the routed release, got %v", b.events)
	}
	if s.DragActive() {
		t.Error("Expected the drag cleared after release")
	}
}

func TestMouseStateTracksButtons(t *testing.T) {
	s, h, _ := newTestScreen()

	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)
	if s.mouseState&1 == 0 {
		t.Error("Expected primary button bit set after press")
	}
	h.HandleMouseButtonEvent(testScreenID, testCodes.SecondaryMouseButton, testCodes.MousePress, 0)
	if s.mouseState&2 == 0 {
		t.Error("Expected secondary button bit set after press")
	}
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MouseRelease, 0)
	if s.mouseState&1 != 0 {
		t.Error("Expected primary button bit cleared after release")
	}
}
