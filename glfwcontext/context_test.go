package glfwcontext

import (
	"os"
	"runtime"
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kestrelgfx/glwindow/options"
)

func TestKeyFuncDispatch(t *testing.T) {
	c := &Context{keyFuncs: make(map[glfw.Key]func())}

	called := 0
	c.RegisterKeyFunc(glfw.KeyR, func() { called++ })

	c.keyCallback(nil, glfw.KeyR, 0, glfw.Press, 0)
	if called != 1 {
		t.Errorf("key func ran %d times after press, want 1", called)
	}

	// Releases and repeats do not dispatch.
	c.keyCallback(nil, glfw.KeyR, 0, glfw.Release, 0)
	c.keyCallback(nil, glfw.KeyR, 0, glfw.Repeat, 0)
	if called != 1 {
		t.Errorf("key func ran %d times after release/repeat, want 1", called)
	}

	// Unregistered keys are ignored.
	c.keyCallback(nil, glfw.KeyA, 0, glfw.Press, 0)
	if called != 1 {
		t.Errorf("key func ran %d times after unrelated key, want 1", called)
	}
}

// The tests below need a real display. They exercise the actual GLFW path
// once, hidden-window, and are skipped on headless machines.
func TestCreateDestroyWindow(t *testing.T) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display available")
	}
	runtime.LockOSThread()

	var sub Subsystem
	if err := sub.Init(); err != nil {
		t.Skipf("GLFW init failed: %v", err)
	}
	defer sub.Terminate()

	cfg := options.Default()
	cfg.Visible = false

	ctx, err := sub.CreateContext(cfg)
	if err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}
	if !ctx.Valid() {
		t.Error("context not valid after creation")
	}
	if ctx.ShouldClose() {
		t.Error("fresh window already flagged for close")
	}

	ctx.RequestClose()
	if !ctx.ShouldClose() {
		t.Error("RequestClose did not stick")
	}

	// An absurd context version must be refused at window creation.
	bad := cfg
	bad.GLMajor, bad.GLMinor = 99, 0
	if _, err := sub.CreateContext(bad); err == nil {
		t.Error("CreateContext accepted OpenGL 99.0")
	}

	ctx.Destroy()
	if ctx.Valid() {
		t.Error("context still valid after Destroy")
	}
	// Destroy is safe to repeat.
	ctx.Destroy()
}
