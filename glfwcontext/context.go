package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kestrelgfx/glwindow/graphics"
	"github.com/kestrelgfx/glwindow/options"
)

// Subsystem implements graphics.Subsystem on top of GLFW. GLFW keeps
// process-wide state, so Init and Terminate must bracket all window use and
// everything must stay on the main thread.
type Subsystem struct{}

func (Subsystem) Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW initialized, version: %s", glfw.GetVersionString())
	return nil
}

func (Subsystem) Terminate() {
	glfw.Terminate()
	log.Printf("GLFW terminated")
}

func (Subsystem) Time() float64 {
	return glfw.GetTime()
}

// CreateContext creates a window with the configured version/profile hints
// and makes its context current on the calling thread.
func (Subsystem) CreateContext(cfg options.Config) (graphics.Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		// Core contexts on macOS require forward compatibility.
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}

	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:   win,
		keyFuncs: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.keyCallback)

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return c, nil
}

// Context wraps a GLFW window. It also keeps a registry of functions to be
// called on key presses.
type Context struct {
	window   *glfw.Window
	observer graphics.ResizeObserver
	keyFuncs map[glfw.Key]func()
}

// RegisterKeyFunc registers a function to be called when key is pressed.
// Escape always requests a close in addition to any registered function.
func (c *Context) RegisterKeyFunc(key glfw.Key, f func()) {
	c.keyFuncs[key] = f
}

func (c *Context) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
	}
	if f, ok := c.keyFuncs[key]; ok {
		f()
	}
}

func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) RequestClose() {
	c.window.SetShouldClose(true)
}

func (c *Context) QuitKeyPressed() bool {
	return c.window.GetKey(glfw.KeyEscape) == glfw.Press
}

// SetResizeObserver registers the observer to be notified with new
// framebuffer dimensions. Notifications arrive during PollEvents.
func (c *Context) SetResizeObserver(obs graphics.ResizeObserver) {
	c.observer = obs
	c.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if c.observer != nil {
			c.observer.FramebufferResized(width, height)
		}
	})
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) FramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Valid() bool {
	return c.window != nil
}

// Destroy releases the window. The subsystem itself stays up until
// Subsystem.Terminate.
func (c *Context) Destroy() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}
