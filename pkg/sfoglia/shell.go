package sfoglia

import (
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// CanExitFunc is the host shell's close-interception predicate. It
// returns true when closing may proceed; a page with unsaved state
// registers one that returns false (and shows its own prompt).
type CanExitFunc func() bool

// Shell is the boundary to the host window: close-request interception
// and platform chrome selection. It carries no navigation logic.
type Shell struct {
	mu      sync.Mutex
	canExit CanExitFunc
	closing atomic.Bool
}

// NewShell creates a Shell with no predicate registered: close requests
// proceed unconditionally until SetCanExit is called.
func NewShell() *Shell {
	return &Shell{}
}

// SetCanExit overwrites the close-interception predicate. Pass nil to
// remove interception.
func (s *Shell) SetCanExit(fn CanExitFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canExit = fn
}

// RequestClose is called by the host on a window close request. It
// returns true when the close should proceed; once it has returned
// true, subsequent calls return true without consulting the predicate
// (the window is already going away).
func (s *Shell) RequestClose() bool {
	if s.closing.Load() {
		return true
	}
	s.mu.Lock()
	fn := s.canExit
	s.mu.Unlock()
	if fn != nil && !fn() {
		return false
	}
	s.closing.Store(true)
	return true
}

// Closing reports whether a close request has been accepted.
func (s *Shell) Closing() bool {
	return s.closing.Load()
}

// ChromeOptions are abstract window-chrome hints for a detached panel
// window. The host's windowing layer maps them to whatever its
// toolkit supports.
type ChromeOptions struct {
	Borderless        bool // no native decorations; the panel draws its own title bar
	NativeControls    bool // keep the platform's min/max/close buttons
	TrafficLightInset bool // inset the macOS traffic lights into the custom title bar
	SnapLayouts       bool // opt into Windows 11 snap layout flyouts
}

// IsZero reports whether no hints are set.
func (c ChromeOptions) IsZero() bool {
	return c == ChromeOptions{}
}

// ChromeFor picks platform chrome for an os-type string ("macos",
// "windows", "linux", as reported by the host shell). The os-type is
// used only here; it is not part of the navigation contract.
func ChromeFor(osType string) ChromeOptions {
	switch strings.ToLower(osType) {
	case "macos", "darwin":
		return ChromeOptions{Borderless: true, TrafficLightInset: true}
	case "windows":
		return ChromeOptions{Borderless: true, NativeControls: true, SnapLayouts: true}
	default:
		return ChromeOptions{NativeControls: true}
	}
}
