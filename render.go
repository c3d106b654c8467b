package glaze

// Renderer is the vector-drawing surface widgets paint onto. The toolkit
// does not implement rendering itself; backend/opengl provides an
// implementation, and tests may pass nil (widgets fall back to coarse
// fixed-advance text metrics).
type Renderer interface {
	// BeginFrame starts a frame covering a logical width x height area at
	// the given pixel ratio.
	BeginFrame(width, height, pixelRatio float32)

	// EndFrame flushes the frame to the GPU.
	EndFrame() error

	// FillRect fills a rectangle with a solid color.
	FillRect(r Rect, c Color)

	// StrokeRect outlines a rectangle.
	StrokeRect(r Rect, width float32, c Color)

	// Text draws a string with its top-left corner at pos.
	Text(pos Vec2, size float32, c Color, text string)

	// TextBounds returns the width and height text occupies at the given
	// font size.
	TextBounds(size float32, text string) Vec2

	// Resize updates the renderer's viewport.
	Resize(width, height int)

	// Delete releases GPU resources. The renderer is unusable afterwards.
	Delete()
}

// textBounds measures text through r, or with a fixed-advance estimate when
// no renderer is available (layout in headless tests).
func textBounds(r Renderer, size float32, text string) Vec2 {
	if r != nil {
		return r.TextBounds(size, text)
	}
	return Vec2{X: size * 0.5 * float32(len(text)), Y: size}
}
