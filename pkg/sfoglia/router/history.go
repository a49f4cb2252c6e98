package router

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"

// Entry is an immutable snapshot of a previously active route: its
// path, URL-visible params, and transient props. Entries are copied
// when pushed so later mutation of the live state cannot retroactively
// corrupt history. Props is nil when the route had none.
type Entry struct {
	Path   string
	Params value.Params
	Props  value.Params
}

// clone copies the entry's bags so the stack owns its data.
func (e Entry) clone() Entry {
	return Entry{
		Path:   e.Path,
		Params: e.Params.Clone(),
		Props:  e.Props.Clone(),
	}
}

// Stack holds the past and future halves of navigation history.
//
// Ordering is chronological: past is popped from its tail (most recent
// first, LIFO) and future is popped from its head (nearest future
// first). There is no deduplication: revisiting the same route key
// twice produces two distinct entries. Every forward navigation clears
// future unconditionally (branch invalidation): redoing into an
// abandoned future is never allowed.
type Stack struct {
	past   []Entry
	future []Entry
}

// NewStack creates an empty history stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push records current as the newest past entry and invalidates the
// future branch. Called on every recorded forward navigation.
func (s *Stack) Push(current Entry) {
	s.past = append(s.past, current.clone())
	s.future = s.future[:0]
}

// invalidateFuture drops the future branch without recording a past
// entry. The bootstrap navigation takes this path: it must not create
// a back-target but still must not leave a restorable future.
func (s *Stack) invalidateFuture() {
	s.future = s.future[:0]
}

// Back moves one step back: current is pushed to the front of future
// and the most recent past entry is returned. ok is false, with no
// state change, when there is no past to return to.
func (s *Stack) Back(current Entry) (restored Entry, ok bool) {
	if len(s.past) == 0 {
		return Entry{}, false
	}
	s.future = append([]Entry{current.clone()}, s.future...)
	restored = s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	return restored, true
}

// Forward is the symmetric inverse of Back: current is appended to
// past and the nearest future entry is returned. ok is false, with no
// state change, when there is no future to advance into.
func (s *Stack) Forward(current Entry) (restored Entry, ok bool) {
	if len(s.future) == 0 {
		return Entry{}, false
	}
	s.past = append(s.past, current.clone())
	restored = s.future[0]
	s.future = s.future[1:]
	return restored, true
}

// CanGoBack reports whether a Back would succeed.
func (s *Stack) CanGoBack() bool {
	return len(s.past) > 0
}

// CanGoForward reports whether a Forward would succeed.
func (s *Stack) CanGoForward() bool {
	return len(s.future) > 0
}

// PastLen returns the number of past entries.
func (s *Stack) PastLen() int {
	return len(s.past)
}

// FutureLen returns the number of future entries.
func (s *Stack) FutureLen() int {
	return len(s.future)
}

// Past returns a copy of the past entries, oldest first.
func (s *Stack) Past() []Entry {
	return cloneEntries(s.past)
}

// Future returns a copy of the future entries, nearest first.
func (s *Stack) Future() []Entry {
	return cloneEntries(s.future)
}

// Restore replaces both halves wholesale. Used when adopting a
// navigation context handed off from another window.
func (s *Stack) Restore(past, future []Entry) {
	s.past = cloneEntries(past)
	s.future = cloneEntries(future)
}

// Clear removes all entries from both halves.
func (s *Stack) Clear() {
	s.past = s.past[:0]
	s.future = s.future[:0]
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return out
}
