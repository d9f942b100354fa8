package graphics

// State tracks a rendering context through its lifecycle. ShutDown is
// terminal; a context is never reused after teardown.
type State int

const (
	Uninitialized State = iota
	ContextReady
	Running
	ShutDown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ContextReady:
		return "context-ready"
	case Running:
		return "running"
	case ShutDown:
		return "shut-down"
	}
	return "unknown"
}
