package handoff

import (
	"log/slog"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
)

// AdoptOptions names the sources a new window may boot from, in
// priority order.
type AdoptOptions struct {
	HandoffID string // single-use slot id from the spawning window, if any
	StartURL  string // deep link from the OS or the spawning window, if any
	Default   string // route key to land on when both sources are absent or unusable
}

// Adopt seeds a freshly constructed router from the best available
// source: the handoff slot first, then the deep link, then the default
// route. Each source failing is degraded, never fatal: the window
// always lands on a valid route. Call before the router's bootstrap
// navigation; the router must still be at its initial empty path.
func Adopt(r *router.Router, ch *Channel, codec *deeplink.Codec, opts AdoptOptions, log *slog.Logger) {
	if opts.HandoffID != "" {
		snap, err := ch.Consume(opts.HandoffID)
		if err == nil {
			r.Navigate(snap.Path, snap.Params, snap.Props)
			r.RestoreHistory(snap.Past, snap.Future)
			return
		}
		if log != nil {
			log.Warn("handoff unavailable, falling back", "id", opts.HandoffID, "error", err)
		}
	}

	if opts.StartURL != "" {
		path, params, err := codec.Decode(opts.StartURL)
		if err == nil {
			r.Navigate(path, params, nil)
			return
		}
		if log != nil {
			log.Warn("start url unusable, falling back", "url", opts.StartURL, "error", err)
		}
	}

	r.Navigate(opts.Default, nil, nil)
}
