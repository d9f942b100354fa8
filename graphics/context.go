package graphics

import (
	"github.com/kestrelgfx/glwindow/options"
)

// Subsystem is the process-wide windowing library. Init and Terminate bracket
// all other use; both must be called from the same OS thread.
type Subsystem interface {
	Init() error
	Terminate()

	// CreateContext applies the configured hints, creates the window and
	// makes its context current on the calling thread.
	CreateContext(cfg options.Config) (Context, error)

	// Time returns seconds since subsystem init.
	Time() float64
}

// Context is a live window plus its OpenGL context.
type Context interface {
	MakeCurrent()

	// ShouldClose reports whether the window has been asked to close,
	// either by RequestClose or externally (close button, window manager).
	ShouldClose() bool

	// RequestClose flags the window for closing. The flag is one-way; a
	// requested close is never cleared.
	RequestClose()

	// QuitKeyPressed reports whether the quit key (Escape) is currently
	// held down.
	QuitKeyPressed() bool

	SetResizeObserver(ResizeObserver)

	SwapBuffers()

	// PollEvents drains pending platform events. Observers may be invoked
	// synchronously from inside this call.
	PollEvents()

	FramebufferSize() (int, int)

	// Valid reports whether the underlying window is still live.
	Valid() bool

	// Destroy releases the window. Safe to call more than once.
	Destroy()
}

// ResizeObserver is notified with the new framebuffer size whenever the
// window is resized.
type ResizeObserver interface {
	FramebufferResized(width, height int)
}

// API is the slice of the OpenGL API the lifecycle driver needs. Init must be
// called with a context current before any other method.
type API interface {
	// Init resolves the OpenGL function pointers for the current context.
	Init() error

	// Version returns the driver-reported version string.
	Version() string

	Viewport(width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
}
