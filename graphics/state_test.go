package graphics

import "testing"

func TestStateString(t *testing.T) {
	states := map[State]string{
		Uninitialized: "uninitialized",
		ContextReady:  "context-ready",
		Running:       "running",
		ShutDown:      "shut-down",
	}
	for s, want := range states {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
