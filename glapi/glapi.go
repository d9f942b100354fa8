package glapi

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// API implements graphics.API on the go-gl bindings. Init must run with a
// context current on the calling thread; the other methods assume it
// succeeded.
type API struct{}

// Init resolves the OpenGL function pointers for the current context. A
// second call re-resolves them with no other side effects.
func (API) Init() error {
	return gl.Init()
}

func (API) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (API) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (API) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
