// Package value models the loosely-typed bags carried as navigation
// params and props: string-keyed maps over a closed set of primitive
// variants, plus the transport-string codec used when a bag crosses a
// window boundary (where the transfer medium only supports strings).
package value

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindJSON // structured value decoded from a JSON object or array literal
)

// Value is one member of the closed variant set a navigation param or
// prop may hold. The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	js   any
}

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric value. Integers and floats share this variant.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null is the explicit absence marker. Passing Null to UpdateQuery
// removes the key.
func Null() Value { return Value{kind: KindNull} }

// JSON wraps an already-decoded structured value (map[string]any or
// []any, as produced by encoding/json).
func JSON(v any) Value { return Value{kind: KindJSON, js: v} }

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Zero for other kinds.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload. Zero for other kinds.
func (v Value) Num() float64 { return v.num }

// Bool returns the boolean payload. False for other kinds.
func (v Value) Bool() bool { return v.b }

// Structured returns the decoded JSON payload. Nil for other kinds.
func (v Value) Structured() any { return v.js }

// IsNull reports whether this is the explicit absence marker.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Transport encodes the value as its canonical transport string. The
// encoding is stable: equal values always produce identical strings
// (map keys inside structured values are sorted by encoding/json).
func (v Value) Transport() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindJSON:
		raw, err := json.Marshal(v.js)
		if err != nil {
			return "null"
		}
		return string(raw)
	default:
		return v.str
	}
}

// Sniff decodes a transport string back into a typed Value by pattern:
// boolean, null/undefined, integer, float, and JSON object/array
// literals are recognized; everything else stays a string. This is the
// read-side half of the transport contract: the medium carries only
// strings, so primitive types are reconstructed without a schema.
func Sniff(s string) Value {
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null", "undefined":
		return Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return JSON(decoded)
		}
	}
	return String(s)
}

// Params is an order-irrelevant string-keyed bag of Values. It backs
// both URL-visible navigation params and transient navigation props.
type Params map[string]Value

// Clone deep-copies the bag. A nil receiver clones to nil, preserving
// the "props absent" distinction in history entries.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if v.kind == KindJSON {
			// Round-trip through JSON so shared maps/slices detach.
			raw, err := json.Marshal(v.js)
			if err == nil {
				var decoded any
				if json.Unmarshal(raw, &decoded) == nil {
					out[k] = JSON(decoded)
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}

// Merge returns a new bag holding the union of p and other, with keys
// from other winning on collision. Either side may be nil.
func (p Params) Merge(other Params) Params {
	if len(p) == 0 && other == nil {
		return p.Clone()
	}
	out := make(Params, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Transport stringifies the bag key by key for a window-boundary
// transfer. Nil maps to nil.
func (p Params) Transport() map[string]string {
	if p == nil {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v.Transport()
	}
	return out
}

// FromTransport re-types a stringified bag read from a transfer medium.
// Nil maps to nil.
func FromTransport(raw map[string]string) Params {
	if raw == nil {
		return nil
	}
	out := make(Params, len(raw))
	for k, s := range raw {
		out[k] = Sniff(s)
	}
	return out
}
