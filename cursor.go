package glaze

// Cursor names the standard cursor shapes a widget can request. The screen
// tracks the shape of the widget under the pointer; applying it to the
// native window is the embedding application's job.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorHResize
	CursorVResize
	// CursorCount is not a cursor; it enables loops over the shapes.
	CursorCount
)
