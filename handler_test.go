package glaze

import "testing"

func TestHandlerDispatchOrder(t *testing.T) {
	h, _ := newTestHandler()

	var got []int
	h.AddCursorPosCallback(1, func(x, y float64) { got = append(got, 1) })
	h.AddCursorPosCallback(2, func(x, y float64) { got = append(got, 2) })
	h.AddCursorPosCallback(1, func(x, y float64) { got = append(got, 3) })

	h.HandleCursorPosEvent(1, 10, 20)

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Expected callbacks [1 3] for screen 1, got %v", got)
	}
}

func TestHandlerFiltersByScreenID(t *testing.T) {
	h, _ := newTestHandler()

	calls := 0
	h.AddMouseButtonCallback(7, func(button, action, modifiers int) { calls++ })

	h.HandleMouseButtonEvent(8, 0, 1, 0)
	if calls != 0 {
		t.Errorf("Expected no dispatch to screen 7 for screen 8 event, got %d calls", calls)
	}

	h.HandleMouseButtonEvent(7, 0, 1, 0)
	if calls != 1 {
		t.Errorf("Expected 1 call after screen 7 event, got %d", calls)
	}
}

func TestHandlerRemoveFirstMatch(t *testing.T) {
	h, _ := newTestHandler()

	var got []int
	h.AddKeyCallback(1, func(key, scancode, action, modifiers int) { got = append(got, 1) })
	h.AddKeyCallback(1, func(key, scancode, action, modifiers int) { got = append(got, 2) })

	h.RemoveKeyCallback(1)
	h.HandleKeyEvent(1, 65, 0, 1, 0)

	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected only the second callback to survive removal, got %v", got)
	}
}

func TestHandlerRemoveAbsentIsNoOp(t *testing.T) {
	h, _ := newTestHandler()

	calls := 0
	h.AddScrollCallback(1, func(x, y float64) { calls++ })

	// Removing an id that was never registered must not disturb others.
	h.RemoveScrollCallback(99)
	h.HandleScrollEvent(1, 0, 1)

	if calls != 1 {
		t.Errorf("Expected surviving callback to fire once, got %d", calls)
	}
}

func TestHandlerDropDeliversFilenames(t *testing.T) {
	h, _ := newTestHandler()

	var got []string
	h.AddDropCallback(3, func(filenames []string) { got = filenames })

	h.HandleDropEvent(3, []string{"/tmp/a.txt", "/tmp/b.txt"})

	if len(got) != 2 || got[0] != "/tmp/a.txt" || got[1] != "/tmp/b.txt" {
		t.Errorf("Expected both filenames delivered, got %v", got)
	}
}

func TestHandlerUnconfiguredScalarPanics(t *testing.T) {
	h := NewHandler(testCodes)

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("Expected %s to panic when unconfigured", name)
			}
		}()
		fn()
	}

	assertPanics("Time", func() { h.Time() })
	assertPanics("WindowVisible", func() { h.WindowVisible(1) })
	assertPanics("SetClipboard", func() { h.SetClipboard(1, "x") })
	assertPanics("Clipboard", func() { h.Clipboard(1) })
}

func TestHandlerClipboardRoundTrip(t *testing.T) {
	h := NewHandler(testCodes)
	store := map[int]string{}
	h.SetClipboardFuncs(
		func(screenID int, text string) { store[screenID] = text },
		func(screenID int) string { return store[screenID] },
	)

	h.SetClipboard(4, "hello")
	if got := h.Clipboard(4); got != "hello" {
		t.Errorf("Expected clipboard round trip, got %q", got)
	}
}
