package glaze

import "testing"

func TestButtonFiresOnRelease(t *testing.T) {
	s, h, _ := newTestScreen()

	btn := NewButton(s, "ok")
	placeWidget(btn, 100, 100, 80, 30)

	fired := 0
	btn.SetCallback(func() { fired++ })

	h.HandleCursorPosEvent(testScreenID, 120, 110)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)
	if fired != 0 {
		t.Error("Expected no callback on press")
	}
	if !btn.Pushed() {
		t.Error("Expected the button pushed while held")
	}

	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MouseRelease, 0)
	if fired != 1 {
		t.Errorf("Expected one callback on release, got %d", fired)
	}
	if btn.Pushed() {
		t.Error("Expected the button released")
	}
}

func TestButtonReleaseOutsideDoesNotFire(t *testing.T) {
	s, h, _ := newTestScreen()

	btn := NewButton(s, "ok")
	placeWidget(btn, 100, 100, 80, 30)

	fired := 0
	btn.SetCallback(func() { fired++ })

	h.HandleCursorPosEvent(testScreenID, 120, 110)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MousePress, 0)
	h.HandleCursorPosEvent(testScreenID, 400, 400)
	h.HandleMouseButtonEvent(testScreenID, testCodes.PrimaryMouseButton, testCodes.MouseRelease, 0)

	if fired != 0 {
		t.Errorf("Expected no callback for a release outside, got %d", fired)
	}
	if btn.Pushed() {
		t.Error("Expected the pushed state cleared by the synthetic release")
	}
}
