package router

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

// Config wires a Router's collaborators.
type Config struct {
	Registry *Registry       // required; must contain the fallback entry
	Codec    *deeplink.Codec // required for GenerateURL
	Log      *slog.Logger    // optional
}

// Router is the navigation state store and history engine for one panel
// surface. Construct one per surface; multiple independent instances
// coexist without interference (a detached window gets its own, seeded
// through the handoff channel).
//
// Every operation is synchronous and runs to completion before the next
// observable state change: two Navigate calls never interleave. All
// methods must be called from the surface's own goroutine.
type Router struct {
	registry *Registry
	codec    *deeplink.Codec
	log      *slog.Logger

	path       *Observable[string]
	params     *Observable[value.Params]
	props      *Observable[value.Params]
	customName *Observable[string]

	stack     *Stack
	providers *providers
	refetch   RefetchFunc
}

// Element is a resolved renderable unit plus the merged props the view
// layer should render it with.
type Element struct {
	Entry RouteEntry
	Props value.Params
	Name  string // display name: custom override, else localized/static name
}

// New creates a Router. The registry must already contain an entry
// under constants.FallbackRouteKey so unknown keys always resolve.
func New(cfg Config) (*Router, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("router: registry is required")
	}
	if !cfg.Registry.Has(constants.FallbackRouteKey) {
		return nil, fmt.Errorf("router: registry has no %q fallback entry", constants.FallbackRouteKey)
	}
	if cfg.Codec == nil {
		return nil, fmt.Errorf("router: deep-link codec is required")
	}
	return &Router{
		registry:   cfg.Registry,
		codec:      cfg.Codec,
		log:        cfg.Log,
		path:       NewObservable(""),
		params:     NewObservable[value.Params](nil),
		props:      NewObservable[value.Params](nil),
		customName: NewObservable(""),
		stack:      NewStack(),
		providers:  newProviders(),
	}, nil
}

// Navigate swaps the active view. Unless this is the bootstrap call
// (current path still empty), the outgoing state is first snapshotted
// into history: path, params, and props merged with the outgoing
// route's live provider state. The future branch is invalidated
// unconditionally.
//
// A nil params is treated as empty; a nil props means the route carries
// none.
func (r *Router) Navigate(path string, params, props value.Params) {
	if params == nil {
		params = value.Params{}
	}
	if current := r.path.Get(); current != "" {
		// Bootstrap guard: the very first navigation must not create a
		// spurious back-target.
		r.stack.Push(Entry{
			Path:   current,
			Params: r.params.Get(),
			Props:  r.Snapshot(),
		})
	} else {
		// Still invalidate any restored future branch.
		r.stack.invalidateFuture()
	}

	r.apply(Entry{Path: path, Params: params, Props: props})
	if r.log != nil {
		r.log.Debug("navigate", "path", path, "past", r.stack.PastLen())
	}
}

// UpdateQuery sets or removes one key in the current params. A Null
// value removes the key. With push=true the change is recorded as a
// full history entry (for user-visible navigations such as opening a
// details tab that should be back-navigable); with push=false the
// params mutate in place with no history entry (for high-frequency,
// non-semantic changes such as a search box keystroke).
func (r *Router) UpdateQuery(key string, v value.Value, push bool) {
	newParams := r.params.Get().Clone()
	if newParams == nil {
		newParams = value.Params{}
	}
	if v.IsNull() {
		delete(newParams, key)
	} else {
		newParams[key] = v
	}

	if push {
		r.Navigate(r.path.Get(), newParams, r.Snapshot())
		return
	}
	r.params.Set(newParams)
}

// Backwards steps one entry back in history; no-op when there is no
// past. The restored entry's cached props are applied as-is, with no
// provider or refetch run, so the previous view reappears exactly as
// it was, instantly, without re-querying anything. The refetch callback
// reference is preserved (but never auto-invoked) so an explicit Reload
// still works after history navigation.
func (r *Router) Backwards() {
	restored, ok := r.stack.Back(r.currentEntry())
	if !ok {
		return
	}
	r.apply(restored)
}

// Forwards is the symmetric inverse of Backwards; no-op when there is
// no future.
func (r *Router) Forwards() {
	restored, ok := r.stack.Forward(r.currentEntry())
	if !ok {
		return
	}
	r.apply(restored)
}

// CanGoBack reports whether Backwards would change state.
func (r *Router) CanGoBack() bool {
	return r.stack.CanGoBack()
}

// CanGoForward reports whether Forwards would change state.
func (r *Router) CanGoForward() bool {
	return r.stack.CanGoForward()
}

// Reload invokes the registered refetch callback. A router with no
// callback registered is a documented no-op: the page simply cannot be
// manually refreshed. History is not touched either way.
func (r *Router) Reload() error {
	if r.refetch == nil {
		return nil
	}
	return r.refetch()
}

// SetRefetch overwrites the single refetch callback. Pages call this
// once per mount, in their setup phase.
func (r *Router) SetRefetch(fn RefetchFunc) {
	r.refetch = fn
}

// RegisterStateProvider stores the snapshot provider for path. Last
// registration wins: a page re-mounting replaces its predecessor's
// provider.
func (r *Router) RegisterStateProvider(path string, fn ProviderFunc) {
	r.providers.register(path, fn)
}

// Snapshot captures the current props merged with the active route's
// live provider state, if a provider is registered. Computed fresh on
// every call.
func (r *Router) Snapshot() value.Params {
	return r.providers.snapshot(r.path.Get(), r.props.Get().Clone())
}

// GenerateURL encodes the current path and params as a canonical deep
// link.
func (r *Router) GenerateURL() string {
	return r.codec.Encode(r.path.Get(), r.params.Get())
}

// CurrentPath returns the active route key ("" before bootstrap).
func (r *Router) CurrentPath() string {
	return r.path.Get()
}

// CurrentParams returns the active URL-visible params.
func (r *Router) CurrentParams() value.Params {
	return r.params.Get()
}

// CurrentProps returns the active transient props; nil when the route
// carries none.
func (r *Router) CurrentProps() value.Params {
	return r.props.Get()
}

// CustomName returns the display-name override, or "".
func (r *Router) CustomName() string {
	return r.customName.Get()
}

// SetCustomName overrides the display name until the next navigation.
func (r *Router) SetCustomName(name string) {
	r.customName.Set(name)
}

// CurrentElement resolves the active route key and merges its props:
// registry defaults first, then the transient props, then the params;
// params take precedence on key collisions.
func (r *Router) CurrentElement() Element {
	entry := r.registry.Resolve(r.path.Get())
	name := r.customName.Get()
	if name == "" {
		name = r.registry.DisplayName(r.path.Get())
	}
	return Element{
		Entry: entry,
		Props: entry.DefaultProps.Merge(r.props.Get()).Merge(r.params.Get()),
		Name:  name,
	}
}

// WatchPath subscribes to route changes; returns a cancel function.
func (r *Router) WatchPath(fn func(string)) (cancel func()) {
	return r.path.Subscribe(fn)
}

// WatchParams subscribes to param changes; returns a cancel function.
func (r *Router) WatchParams(fn func(value.Params)) (cancel func()) {
	return r.params.Subscribe(fn)
}

// WatchProps subscribes to prop changes; returns a cancel function.
func (r *Router) WatchProps(fn func(value.Params)) (cancel func()) {
	return r.props.Subscribe(fn)
}

// History returns copies of the past and future stacks, for handoff
// capture and diagnostics.
func (r *Router) History() (past, future []Entry) {
	return r.stack.Past(), r.stack.Future()
}

// RestoreHistory replaces both history stacks wholesale. Used when
// adopting a navigation context handed off from another window.
func (r *Router) RestoreHistory(past, future []Entry) {
	r.stack.Restore(past, future)
}

// Registry returns the route registry this router resolves against.
func (r *Router) Registry() *Registry {
	return r.registry
}

func (r *Router) currentEntry() Entry {
	return Entry{
		Path:   r.path.Get(),
		Params: r.params.Get(),
		Props:  r.props.Get(),
	}
}

// apply installs an entry as the current state. Params and props are
// set before path so a path subscriber reading the router sees the
// fully updated state; the name override never survives a transition.
func (r *Router) apply(e Entry) {
	r.customName.Set("")
	r.params.Set(e.Params)
	r.props.Set(e.Props)
	r.path.Set(e.Path)
}
