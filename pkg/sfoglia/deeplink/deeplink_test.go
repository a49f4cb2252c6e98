package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec("", nil)

	tests := []struct {
		name   string
		path   string
		params value.Params
	}{
		{"no params", "/resources", nil},
		{"string param", "/resources", value.Params{"q": value.String("minecraft")}},
		{"mixed primitives", "/instance", value.Params{
			"id":     value.Number(42),
			"ratio":  value.Number(1.5),
			"pinned": value.Bool(true),
			"tab":    value.String("mods"),
		}},
		{"value needing escaping", "/search", value.Params{"q": value.String("a b&c=d")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := c.Encode(tt.path, tt.params)
			path, params, err := c.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.params, params)
		})
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	c := NewCodec("", nil)
	params := value.Params{"z": value.Number(1), "a": value.String("x"), "m": value.Bool(false)}

	first := c.Encode("/p", params)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, c.Encode("/p", params), "encoding must be byte-identical")
	}
	assert.Equal(t, "sfoglia:///p?a=x&m=false&z=1", first)
}

func TestEncodeOmitsEmptyQuery(t *testing.T) {
	c := NewCodec("", nil)
	assert.Equal(t, "sfoglia:///resources", c.Encode("/resources", nil))
	assert.Equal(t, "sfoglia:///resources", c.Encode("/resources", value.Params{}))
}

func TestDecodeMalformed(t *testing.T) {
	c := NewCodec("launcher", nil)

	for _, raw := range []string{
		"",
		"not a url at all ://",
		"other://path",    // wrong scheme
		"launcher://",     // no path
		"%zz://broken",    // invalid escape
		"launcher:??\x7f", // control byte
	} {
		path, params, err := c.Decode(raw)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
		assert.Empty(t, path)
		assert.Nil(t, params)
	}
}

func TestDecodeTypesParams(t *testing.T) {
	c := NewCodec("", nil)
	path, params, err := c.Decode("sfoglia:///a?count=3&active=true&name=steve")
	require.NoError(t, err)
	assert.Equal(t, "/a", path)
	assert.Equal(t, value.Number(3), params["count"])
	assert.Equal(t, value.Bool(true), params["active"])
	assert.Equal(t, value.String("steve"), params["name"])
}

func TestDefaultScheme(t *testing.T) {
	assert.Equal(t, "sfoglia", NewCodec("", nil).Scheme())
	assert.Equal(t, "launcher", NewCodec("launcher", nil).Scheme())
}
