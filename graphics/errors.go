package graphics

import "errors"

// Initialization failures. Each is fatal to the caller, but all partially
// acquired resources are released before the error is returned.
var (
	ErrSubsystemInit = errors.New("windowing subsystem init failed")
	ErrWindowCreate  = errors.New("window creation failed")
	ErrFunctionLoad  = errors.New("OpenGL function load failed")
)
