package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/kestrelgfx/glwindow/glapi"
	"github.com/kestrelgfx/glwindow/glfwcontext"
	"github.com/kestrelgfx/glwindow/options"
	"github.com/kestrelgfx/glwindow/renderer"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := options.Default()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	flag.IntVar(&cfg.GLMajor, "glmajor", cfg.GLMajor, "OpenGL context major version")
	flag.IntVar(&cfg.GLMinor, "glminor", cfg.GLMinor, "OpenGL context minor version")
	var compat = flag.Bool("compat", false, "Request a compatibility profile instead of core")
	var novsync = flag.Bool("novsync", false, "Disable vsync")
	flag.Parse()

	cfg.CoreProfile = !*compat
	cfg.VSync = !*novsync

	r := renderer.New(glfwcontext.Subsystem{}, glapi.API{})
	if err := r.Create(cfg); err != nil {
		// Create has already torn the subsystem down.
		log.Fatalf("Failed to create rendering context: %v", err)
	}
	if err := r.LoadFunctions(); err != nil {
		log.Printf("Failed to load OpenGL functions: %v", err)
		r.Shutdown()
		os.Exit(1)
	}

	r.Run()
}
