// Package handoff moves a full navigation context (current route plus
// back/forward history) from one router instance to another, typically
// when a panel detaches into its own OS window. The transfer is
// one-shot: a payload is written to a keyed slot under a fresh
// single-use id and consumed exactly once by the receiving window.
package handoff

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

// Snapshot is the full navigation context of one router instance at
// detach time. The refetch callback is deliberately absent; it would
// be stale in the receiving window.
type Snapshot struct {
	Path   string
	Params value.Params
	Props  value.Params
	Past   []router.Entry
	Future []router.Entry
}

// Capture snapshots a router for handoff. Props go through the state
// provider registry so live, unserialized page state (scroll position,
// open tab) survives the window boundary.
func Capture(r *router.Router) *Snapshot {
	past, future := r.History()
	return &Snapshot{
		Path:   r.CurrentPath(),
		Params: r.CurrentParams().Clone(),
		Props:  r.Snapshot(),
		Past:   past,
		Future: future,
	}
}

// wireEntry and wirePayload are the slot serialization. Params and
// props are stringified per key rather than marshaled as one blob: each
// value may hold a different primitive type, and the read side re-types
// them independently via value.Sniff.
type wireEntry struct {
	Path   string            `json:"path"`
	Params map[string]string `json:"params"`
	Props  map[string]string `json:"props,omitempty"`
}

type wireHistory struct {
	Past   []wireEntry `json:"past"`
	Future []wireEntry `json:"future"`
}

type wirePayload struct {
	Path    string            `json:"path"`
	Params  map[string]string `json:"params"`
	Props   map[string]string `json:"props,omitempty"`
	History wireHistory       `json:"history"`
}

// Channel writes and consumes handoff payloads through a slot store.
type Channel struct {
	store SlotStore
	log   *slog.Logger
}

// NewChannel creates a channel over the given store.
func NewChannel(store SlotStore, log *slog.Logger) *Channel {
	return &Channel{store: store, log: log}
}

// Begin serializes snap, writes it to a fresh single-use slot, and
// returns the slot id to embed in the new window's startup parameters.
// Ids are never reused; an unconsumed slot is reclaimed by the store's
// TTL sweep rather than leaking indefinitely.
func (c *Channel) Begin(snap *Snapshot) (handoffID string, err error) {
	payload := wirePayload{
		Path:   snap.Path,
		Params: orEmpty(snap.Params.Transport()),
		Props:  snap.Props.Transport(),
		History: wireHistory{
			Past:   toWireEntries(snap.Past),
			Future: toWireEntries(snap.Future),
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	handoffID = uuid.NewString()
	if err := c.store.Put(handoffID, raw); err != nil {
		return "", err
	}
	if c.log != nil {
		c.log.Debug("handoff written", "id", handoffID, "path", snap.Path)
	}
	return handoffID, nil
}

// Consume reads and deletes the slot for handoffID. Exactly-once: a
// second call for the same id returns ErrNotFound, so two windows can
// never adopt the same navigation context. Corrupt payloads also
// surface as errors; callers fall through to the deep-link path.
func (c *Channel) Consume(handoffID string) (*Snapshot, error) {
	raw, err := c.store.Take(handoffID)
	if err != nil {
		return nil, err
	}

	var payload wirePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		if c.log != nil {
			c.log.Warn("handoff payload corrupt", "id", handoffID, "error", err)
		}
		return nil, err
	}

	snap := &Snapshot{
		Path:   payload.Path,
		Params: value.FromTransport(payload.Params),
		Props:  value.FromTransport(payload.Props),
		Past:   fromWireEntries(payload.History.Past),
		Future: fromWireEntries(payload.History.Future),
	}
	if snap.Params == nil {
		snap.Params = value.Params{}
	}
	if c.log != nil {
		c.log.Debug("handoff consumed", "id", handoffID, "path", snap.Path)
	}
	return snap, nil
}

func toWireEntries(entries []router.Entry) []wireEntry {
	out := make([]wireEntry, len(entries))
	for i, e := range entries {
		out[i] = wireEntry{
			Path:   e.Path,
			Params: orEmpty(e.Params.Transport()),
			Props:  e.Props.Transport(),
		}
	}
	return out
}

func fromWireEntries(entries []wireEntry) []router.Entry {
	out := make([]router.Entry, len(entries))
	for i, w := range entries {
		params := value.FromTransport(w.Params)
		if params == nil {
			params = value.Params{}
		}
		out[i] = router.Entry{
			Path:   w.Path,
			Params: params,
			Props:  value.FromTransport(w.Props),
		}
	}
	return out
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
