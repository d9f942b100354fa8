package graphics

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsAreDistinguishable(t *testing.T) {
	kinds := []error{ErrSubsystemInit, ErrWindowCreate, ErrFunctionLoad}
	for i, kind := range kinds {
		wrapped := fmt.Errorf("%w: %v", kind, errors.New("platform detail"))
		for j, other := range kinds {
			got := errors.Is(wrapped, other)
			if want := i == j; got != want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, other, got, want)
			}
		}
	}
}
