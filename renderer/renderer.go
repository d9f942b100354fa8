package renderer

import (
	"fmt"
	"log"

	"github.com/kestrelgfx/glwindow/graphics"
	"github.com/kestrelgfx/glwindow/options"
)

// Renderer drives a rendering context through its lifecycle: Create brings up
// the windowing subsystem and the window, LoadFunctions resolves the OpenGL
// entry points, Run executes the frame loop and tears everything down when it
// exits. A Renderer is single use; after Shutdown it cannot be restarted.
type Renderer struct {
	subsystem graphics.Subsystem
	api       graphics.API
	context   graphics.Context
	cfg       options.Config
	state     graphics.State
	frameFunc func(frame int, elapsed float64)
}

func New(subsystem graphics.Subsystem, api graphics.API) *Renderer {
	return &Renderer{
		subsystem: subsystem,
		api:       api,
		state:     graphics.Uninitialized,
	}
}

// State returns the current lifecycle state.
func (r *Renderer) State() graphics.State {
	return r.state
}

// SetFrameFunc registers a function called once per loop iteration, after the
// framebuffer is cleared and before buffers are swapped. frame counts from
// zero; elapsed is seconds since the loop started.
func (r *Renderer) SetFrameFunc(f func(frame int, elapsed float64)) {
	r.frameFunc = f
}

// Create initializes the windowing subsystem and creates the window and
// context described by cfg, leaving the context current on the calling
// thread. On any failure the subsystem is fully terminated before the error
// is returned; nothing is leaked.
func (r *Renderer) Create(cfg options.Config) error {
	if r.state != graphics.Uninitialized {
		return fmt.Errorf("create: invalid state %v", r.state)
	}

	if err := r.subsystem.Init(); err != nil {
		r.subsystem.Terminate()
		r.state = graphics.ShutDown
		return fmt.Errorf("%w: %v", graphics.ErrSubsystemInit, err)
	}

	ctx, err := r.subsystem.CreateContext(cfg)
	if err != nil {
		r.subsystem.Terminate()
		r.state = graphics.ShutDown
		return fmt.Errorf("%w: %v", graphics.ErrWindowCreate, err)
	}

	r.context = ctx
	r.cfg = cfg
	r.state = graphics.ContextReady
	return nil
}

// LoadFunctions resolves the OpenGL entry points for the context made current
// by Create. It owns no resources and performs no teardown; on failure the
// caller is expected to call Shutdown. Calling it again re-resolves the
// entries with no side effects beyond the first call.
func (r *Renderer) LoadFunctions() error {
	if r.state != graphics.ContextReady && r.state != graphics.Running {
		return fmt.Errorf("load functions: invalid state %v", r.state)
	}
	if err := r.api.Init(); err != nil {
		return fmt.Errorf("%w: %v", graphics.ErrFunctionLoad, err)
	}
	if r.state == graphics.ContextReady {
		log.Printf("OpenGL %s", r.api.Version())
		r.state = graphics.Running
	}
	return nil
}

// Run executes the frame loop until the context reports it should close,
// either via the quit key or an external close request, whichever comes
// first. Teardown runs exactly once on every exit path, even when the loop
// body never executes.
func (r *Renderer) Run() {
	defer r.Shutdown()

	if r.state != graphics.Running {
		return
	}

	ctx := r.context
	ctx.SetResizeObserver(viewportObserver{api: r.api})

	w, h := ctx.FramebufferSize()
	r.api.Viewport(w, h)
	cc := r.cfg.ClearColor
	r.api.ClearColor(cc[0], cc[1], cc[2], cc[3])

	start := r.subsystem.Time()
	frame := 0
	for !ctx.ShouldClose() {
		if ctx.QuitKeyPressed() {
			ctx.RequestClose()
		}

		r.api.Clear()
		if r.frameFunc != nil {
			r.frameFunc(frame, r.subsystem.Time()-start)
		}

		ctx.SwapBuffers()
		ctx.PollEvents()
		frame++
	}
}

// Shutdown destroys the window if it is still live and terminates the
// windowing subsystem. It is idempotent; only the first call after Create
// does any work.
func (r *Renderer) Shutdown() {
	switch r.state {
	case graphics.ShutDown:
		return
	case graphics.Uninitialized:
		// Nothing was ever brought up.
		r.state = graphics.ShutDown
		return
	}

	if r.context != nil {
		r.context.Destroy()
		r.context = nil
	}
	r.subsystem.Terminate()
	r.state = graphics.ShutDown
}

// viewportObserver tracks framebuffer resizes by updating the viewport, and
// nothing else.
type viewportObserver struct {
	api graphics.API
}

func (o viewportObserver) FramebufferResized(width, height int) {
	o.api.Viewport(width, height)
}
