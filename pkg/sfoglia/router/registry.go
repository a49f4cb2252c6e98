package router

import (
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

// RenderFunc is the renderable unit a route key resolves to. The engine
// never calls it; it is handed back to the host's view layer together
// with the merged props via CurrentElement.
type RenderFunc func(props value.Params) error

// RouteEntry describes one registered view. Entries are created at
// process start and never mutated afterwards.
type RouteEntry struct {
	Key          string       // unique route key, e.g. "/resources"
	Name         string       // static display name fallback
	NameID       string       // optional go-i18n message id for the display name
	Render       RenderFunc   // renderable unit handed to the view layer
	DefaultProps value.Params // props applied when nothing else supplies them
}

// Registry is the static mapping from route keys to renderable units.
// Registration happens at startup; resolution never fails: an unknown
// key resolves to the entry registered under constants.FallbackRouteKey.
type Registry struct {
	entries   map[string]RouteEntry
	localizer *i18n.Localizer
	log       *slog.Logger
}

// NewRegistry creates an empty registry. The localizer is optional; when
// nil, DisplayName uses static names only.
func NewRegistry(localizer *i18n.Localizer, log *slog.Logger) *Registry {
	return &Registry{
		entries:   make(map[string]RouteEntry),
		localizer: localizer,
		log:       log,
	}
}

// Register adds an entry under its Key. Returns the registry for
// chaining. Re-registering a key replaces the previous entry.
func (r *Registry) Register(entry RouteEntry) *Registry {
	r.entries[entry.Key] = entry
	return r
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Resolve returns the entry for key, or the fallback entry when key is
// unknown. An unknown key is a silent, observable fallback, not an
// error; Resolve never fails. If no fallback entry was registered, a
// bare entry carrying only the fallback key is synthesized so callers
// always receive a valid route.
func (r *Registry) Resolve(key string) RouteEntry {
	if entry, ok := r.entries[key]; ok {
		return entry
	}
	if r.log != nil {
		r.log.Debug("unknown route key, resolving to fallback", "key", key)
	}
	if entry, ok := r.entries[constants.FallbackRouteKey]; ok {
		return entry
	}
	return RouteEntry{Key: constants.FallbackRouteKey}
}

// DisplayName returns the user-facing name for key: the localized
// message when the entry carries a NameID and a localizer is configured,
// else the static name, else the key itself.
func (r *Registry) DisplayName(key string) string {
	entry := r.Resolve(key)
	if entry.NameID != "" && r.localizer != nil {
		msg, err := r.localizer.Localize(&i18n.LocalizeConfig{MessageID: entry.NameID})
		if err == nil && msg != "" {
			return msg
		}
	}
	if entry.Name != "" {
		return entry.Name
	}
	return entry.Key
}
