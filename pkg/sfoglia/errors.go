package sfoglia

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/handoff"
)

// Sentinel errors for common conditions. Most navigation failure modes
// degrade silently by design (unknown route → fallback entry, empty
// history → no-op, missing refetch → no-op); errors exist only where an
// API actually returns one.
var (
	// ErrHandoffNotFound indicates a handoff slot that is absent:
	// never written, already consumed, or expired. The receiving window
	// falls through to the deep-link source.
	ErrHandoffNotFound = handoff.ErrNotFound

	// ErrMalformedDeepLink indicates input the codec could not decode.
	// Treated as "no deep link present" on fallback paths.
	ErrMalformedDeepLink = deeplink.ErrMalformed
)

// NavigationError represents an engine-level error (config unreadable,
// handoff storage failing, registry misconfigured). These indicate
// something is wrong with the embedding itself rather than a condition
// a page can handle.
type NavigationError struct {
	Op  string // Operation that failed (e.g., "init", "detach")
	Err error  // Underlying error
}

func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// NewNavigationError creates a new engine-level error.
func NewNavigationError(op string, err error) *NavigationError {
	return &NavigationError{Op: op, Err: err}
}

// IsNavigationError checks if an error is an engine-level error.
func IsNavigationError(err error) bool {
	var navErr *NavigationError
	return errors.As(err, &navErr)
}
