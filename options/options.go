package options

// Config describes the window and OpenGL context to create. It is read once
// by the bootstrapper and never mutated afterwards.
type Config struct {
	Width  int
	Height int
	Title  string

	// Requested OpenGL context version and profile.
	GLMajor     int
	GLMinor     int
	CoreProfile bool

	Resizable bool
	Visible   bool
	VSync     bool

	// ClearColor is the RGBA color the driver clears the framebuffer to
	// each frame.
	ClearColor [4]float32
}

// Default returns the configuration for a resizable 800x600 window with an
// OpenGL 3.3 core profile context and vsync enabled.
func Default() Config {
	return Config{
		Width:       800,
		Height:      600,
		Title:       "Hello, Window!",
		GLMajor:     3,
		GLMinor:     3,
		CoreProfile: true,
		Resizable:   true,
		Visible:     true,
		VSync:       true,
		ClearColor:  [4]float32{0.2, 0.3, 0.3, 1.0},
	}
}
