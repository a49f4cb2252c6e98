// Package deeplink converts a route key and its URL-visible params to a
// canonical transfer string and back. The format is
// "<scheme>://<path>?<urlencoded params>", stable and round-trippable:
// two encodes of identical input produce byte-identical output, which
// the handoff fallback path and OS-level "open window at this route"
// invocations depend on.
package deeplink

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

// Codec encodes and decodes deep links for one URI scheme.
type Codec struct {
	scheme string
	log    *slog.Logger
}

// NewCodec creates a codec for the given scheme, defaulting to
// constants.DefaultScheme when scheme is empty.
func NewCodec(scheme string, log *slog.Logger) *Codec {
	if scheme == "" {
		scheme = constants.DefaultScheme
	}
	return &Codec{scheme: scheme, log: log}
}

// Scheme returns the codec's URI scheme.
func (c *Codec) Scheme() string {
	return c.scheme
}

// Encode produces the canonical deep link for (path, params). The query
// component is omitted entirely when params is empty; keys are encoded
// in sorted order and values use their canonical transport strings, so
// the output is reproducible byte for byte.
func (c *Codec) Encode(path string, params value.Params) string {
	var b strings.Builder
	b.WriteString(c.scheme)
	b.WriteString("://")
	b.WriteString(path)
	if len(params) > 0 {
		vals := url.Values{}
		for k, v := range params {
			vals.Set(k, v.Transport())
		}
		b.WriteByte('?')
		b.WriteString(vals.Encode()) // Encode sorts by key
	}
	return b.String()
}

// Decode is the left inverse of Encode. Malformed input (unparseable
// URL, wrong scheme, or empty path) yields ("", nil, error) rather
// than panicking; callers on fallback paths treat that as absent.
// Param values are re-typed from their transport strings.
func (c *Codec) Decode(raw string) (path string, params value.Params, err error) {
	u, perr := url.Parse(raw)
	if perr != nil {
		if c.log != nil {
			c.log.Warn("malformed deep link", "url", raw, "error", perr)
		}
		return "", nil, ErrMalformed
	}
	if u.Scheme != c.scheme {
		if c.log != nil {
			c.log.Warn("deep link has unexpected scheme", "url", raw, "want", c.scheme)
		}
		return "", nil, ErrMalformed
	}

	// Route keys usually start with "/", which url.Parse splits into an
	// empty host plus the path; a bare key lands in the host instead.
	path = u.Host + u.Path
	if path == "" {
		path = u.Opaque
	}
	if path == "" {
		return "", nil, ErrMalformed
	}

	query := u.Query()
	if len(query) > 0 {
		params = make(value.Params, len(query))
		for k := range query {
			params[k] = value.Sniff(query.Get(k))
		}
	}
	return path, params, nil
}
