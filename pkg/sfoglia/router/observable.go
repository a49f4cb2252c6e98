package router

import (
	"sync"

	"go.uber.org/atomic"
)

// Observable is a mutable cell with get/set/subscribe semantics. The
// router's current* fields are Observables so that view code can react
// to navigation without the router knowing about any rendering layer.
//
// Set notifies subscribers synchronously, after the new value is
// visible to Get: a subscriber that re-reads the cell always sees the
// value it was notified with, or a newer one.
type Observable[T any] struct {
	mu      sync.Mutex
	v       T
	rev     atomic.Int64
	subs    map[int]func(T)
	nextSub int
}

// NewObservable creates an Observable holding the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{v: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set stores a new value and notifies all subscribers.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.v = v
	subs := make([]func(T), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	o.rev.Inc()
	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn to be called on every Set. The returned
// function cancels the subscription.
func (o *Observable[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func(T))
	}
	id := o.nextSub
	o.nextSub++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

// Rev returns a monotonically increasing revision, bumped on every Set.
// Useful for change detection without subscribing.
func (o *Observable[T]) Rev() int64 {
	return o.rev.Load()
}
