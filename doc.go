/*
Package glaze provides a retained-mode GUI widget toolkit layered over an
OpenGL vector renderer. Window and input backends (GLFW, SDL) stay outside
the package: they are connected through a Handler, a small callback registry
that translates native events into the widget-tree event protocol.

# Overview

An application builds one Handler per windowing backend, creates one Screen
per native window, and attaches a widget tree to each Screen. The Screen
registers itself with the Handler at construction; afterwards every native
input event flows

	backend -> Handler.Handle*Event(screenID, ...) -> Screen -> widget tree

The Screen performs coordinate normalization, hit testing, drag capture,
modal-window gating, focus-path maintenance and window z-ordering before
any widget sees an event.

# Quick Start

	// Build a handler with the backend's native codes. The glfw backend
	// does this for you.
	be := glfwbackend.New()

	window, _ := glfw.CreateWindow(800, 600, "demo", nil, nil)
	be.Register(1, window)

	renderer, _ := opengl.NewRenderer()
	screen := glaze.NewScreen(be.Handler(), 1, glaze.Vec2{X: 800, Y: 600}, 1,
		glaze.WithRenderer(renderer))

	win := glaze.NewWindow(screen, "Hello")
	glaze.NewButton(win, "Click me").SetCallback(func() { ... })

	screen.PerformLayout(renderer)
	screen.CenterWindow(win)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    screen.DrawAll()
	    window.SwapBuffers()
	}
	screen.Dispose()

# Threading

The toolkit is single threaded: all widget-tree mutation and event dispatch
must happen on the thread that owns the GL context and polls backend
events. Run provides an optional redraw ticker goroutine; it never touches
the tree, it only invokes a backend wake function.

# Error policy

Two failure kinds exist. Configuration errors (a Handler accessor used
before its callback was set) panic immediately; they are programmer errors
and are never recovered. Panics raised while delivering an event through
the widget tree are caught at the dispatch boundary, logged, and terminate
the process: partial delivery can leave focus and drag state inconsistent,
and there is no safe rollback mid-traversal.
*/
package glaze
