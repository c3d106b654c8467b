// Example demonstrates a minimal glaze application: a GLFW window hosting a
// screen with a draggable window, a modal dialog and a popup.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glaze-ui/glaze"
	glazeglfw "github.com/glaze-ui/glaze/backend/glfw"
	"github.com/glaze-ui/glaze/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glaze example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return fmt.Errorf("glaze renderer: %w", err)
	}

	// Wire the window's input callbacks to screen id 0.
	backend := glazeglfw.New()
	const screenID = 0
	backend.Register(screenID, window)

	screen := glaze.NewScreen(backend.Handler(), screenID,
		glaze.Vec2{X: windowWidth, Y: windowHeight}, glazeglfw.PixelRatio(window),
		glaze.WithRenderer(renderer),
		glaze.WithDropCallback(func(filenames []string) {
			fmt.Println("dropped:", filenames)
		}),
	)
	defer screen.Dispose()

	// A draggable window with a button that opens a modal dialog.
	demo := glaze.NewWindow(screen, "Demo")
	demo.SetLayout(glaze.NewBoxLayout(glaze.Vertical, glaze.AlignFill, 10, 6))
	demo.SetPosition(glaze.Vec2{X: 60, Y: 60})

	glaze.NewLabel(demo, "Drag me by the header.")

	clicks := 0
	counter := glaze.NewButton(demo, "Click me (0)")
	counter.SetTooltip("Increments the counter")
	counter.SetCallback(func() {
		clicks++
		counter.SetCaption(fmt.Sprintf("Click me (%d)", clicks))
	})

	dialogBtn := glaze.NewButton(demo, "Open dialog")
	dialogBtn.SetCallback(func() {
		dialog := glaze.NewWindow(screen, "Modal", glaze.AsModal())
		dialog.SetLayout(glaze.NewBoxLayout(glaze.Vertical, glaze.AlignMiddle, 10, 6))
		glaze.NewLabel(dialog, "Clicks outside are ignored.")
		closeBtn := glaze.NewButton(dialog, "Close")
		closeBtn.SetCallback(dialog.Dispose)
		screen.PerformLayout(renderer)
		dialog.Center()
		dialog.RequestFocus()
	})

	popupBtn := glaze.NewButton(demo, "Toggle popup")
	popup := glaze.NewPopup(screen, demo)
	popup.SetLayout(glaze.NewBoxLayout(glaze.Vertical, glaze.AlignMinimum, 10, 6))
	popup.SetVisible(false)
	glaze.NewLabel(popup, "Anchored to the window.")
	popupBtn.SetCallback(func() {
		popup.SetVisible(!popup.Visible())
		popup.SetAnchorPos(popupBtn.Position().Add(
			glaze.Vec2{X: demo.Size().X, Y: popupBtn.Size().Y / 2}))
	})

	screen.PerformLayout(renderer)

	glaze.Run(func() bool {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := screen.DrawAll(); err != nil {
			fmt.Fprintln(os.Stderr, "draw:", err)
			return false
		}

		window.SwapBuffers()
		return !window.ShouldClose()
	}, glfw.PostEmptyEvent, 50*time.Millisecond)

	return nil
}
