package router

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"

// ProviderFunc returns a route's live in-memory state on demand: state
// that is not normally serialized into params, such as scroll position
// or the open tab. It is consulted lazily, only at the moment a
// snapshot is taken, and never persisted itself.
type ProviderFunc func() value.Params

// RefetchFunc refreshes the current view's data. Singular per router,
// overwritten on every page mount, and deliberately excluded from
// history entries and handoff payloads; it would be stale across
// navigation.
type RefetchFunc func() error

// providers is the state snapshot provider registry: one provider per
// route key, last registration wins (a page re-mounting replaces its
// predecessor's provider).
type providers struct {
	byPath map[string]ProviderFunc
}

func newProviders() *providers {
	return &providers{byPath: make(map[string]ProviderFunc)}
}

func (p *providers) register(path string, fn ProviderFunc) {
	p.byPath[path] = fn
}

// snapshot merges the provider's live state over props for the given
// path. Computed synchronously at capture time, never cached, so it
// always reflects live state. Without a provider, props is returned
// unchanged.
func (p *providers) snapshot(path string, props value.Params) value.Params {
	fn, ok := p.byPath[path]
	if !ok {
		return props
	}
	live := fn()
	if len(live) == 0 {
		return props
	}
	return props.Merge(live)
}
