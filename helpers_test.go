package glaze

// Shared test fixtures: a deterministic clock, backend-neutral codes and a
// widget that records the events it receives.

var testCodes = Codes{
	PrimaryMouseButton:   0,
	SecondaryMouseButton: 1,
	MousePress:           1,
	MouseRelease:         0,

	KeyLeft:      263,
	KeyRight:     262,
	KeyUp:        265,
	KeyDown:      264,
	KeyHome:      268,
	KeyEnd:       269,
	KeyBackspace: 259,
	KeyDelete:    261,
	KeyEnter:     257,

	KeyA: 65,
	KeyX: 88,
	KeyC: 67,
	KeyV: 86,

	ModShift:   1,
	ModControl: 2,
	ModCommand: 8,
}

type fakeClock struct {
	now float64
}

func (c *fakeClock) advance(seconds float64) { c.now += seconds }

func newTestHandler() (*Handler, *fakeClock) {
	clock := &fakeClock{}
	h := NewHandler(testCodes)
	h.SetTimeFunc(func() float64 { return clock.now })
	h.SetWindowVisibleFunc(func(int) bool { return true })
	h.SetClipboardFuncs(func(int, string) {}, func(int) string { return "" })
	return h, clock
}

const testScreenID = 1

func newTestScreen() (*Screen, *Handler, *fakeClock) {
	h, clock := newTestHandler()
	s := NewScreen(h, testScreenID, Vec2{X: 800, Y: 600}, 1)
	return s, h, clock
}

// recordWidget notes every event delivered to it and can be told which
// event kinds to claim.
type recordWidget struct {
	BaseWidget
	events []string

	claimMouse bool
	claimKey   bool
	claimChar  bool

	lastDragPos Vec2
	lastDragRel Vec2
	dragEvents  int

	focusGained int
	focusLost   int
}

func newRecordWidget(parent Widget) *recordWidget {
	w := &recordWidget{}
	w.InitWidget(w)
	if parent != nil {
		parent.AddChild(w)
	}
	return w
}

func (w *recordWidget) MouseButtonEvent(p Vec2, button int, down bool, modifiers int) bool {
	if down {
		w.events = append(w.events, "press")
	} else {
		w.events = append(w.events, "release")
	}
	if w.claimMouse {
		return true
	}
	return w.BaseWidget.MouseButtonEvent(p, button, down, modifiers)
}

func (w *recordWidget) MouseDragEvent(p, rel Vec2, buttons, modifiers int) bool {
	w.events = append(w.events, "drag")
	w.lastDragPos = p
	w.lastDragRel = rel
	w.dragEvents++
	return true
}

func (w *recordWidget) ScrollEvent(p, rel Vec2) bool {
	w.events = append(w.events, "scroll")
	return w.claimMouse
}

func (w *recordWidget) FocusEvent(focused bool) bool {
	if focused {
		w.focusGained++
	} else {
		w.focusLost++
	}
	return w.BaseWidget.FocusEvent(focused)
}

func (w *recordWidget) KeyboardEvent(key, scancode, action, modifiers int) bool {
	w.events = append(w.events, "key")
	return w.claimKey
}

func (w *recordWidget) KeyboardCharacterEvent(codepoint rune) bool {
	w.events = append(w.events, "char")
	return w.claimChar
}

func placeWidget(w Widget, x, y, width, height float32) {
	w.SetPosition(Vec2{X: x, Y: y})
	w.SetSize(Vec2{X: width, Y: height})
}
