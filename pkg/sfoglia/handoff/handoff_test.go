package handoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

func noopRender(value.Params) error { return nil }

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	reg := router.NewRegistry(nil, nil)
	reg.Register(router.RouteEntry{Key: constants.FallbackRouteKey, Name: "Not Found", Render: noopRender})
	reg.Register(router.RouteEntry{Key: "/home", Name: "Home", Render: noopRender})
	reg.Register(router.RouteEntry{Key: "/a", Name: "A", Render: noopRender})
	reg.Register(router.RouteEntry{Key: "/b", Name: "B", Render: noopRender})

	r, err := router.New(router.Config{Registry: reg, Codec: deeplink.NewCodec("", nil)})
	require.NoError(t, err)
	return r
}

func TestBeginConsumeRoundTrip(t *testing.T) {
	src := newTestRouter(t)
	src.Navigate("/a", value.Params{"step": value.Number(1)}, nil)
	src.Navigate("/b",
		value.Params{"id": value.Number(42), "pinned": value.Bool(true)},
		value.Params{"resource": value.JSON(map[string]any{"name": "minecraft"})},
	)
	src.RegisterStateProvider("/b", func() value.Params {
		return value.Params{"scroll": value.Number(120)}
	})
	src.Backwards() // leave a future branch so both halves transfer

	ch := NewChannel(NewMemoryStore(0), nil)
	id, err := ch.Begin(Capture(src))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	snap, err := ch.Consume(id)
	require.NoError(t, err)

	dst := newTestRouter(t)
	dst.Navigate(snap.Path, snap.Params, snap.Props)
	dst.RestoreHistory(snap.Past, snap.Future)

	assert.Equal(t, src.CurrentPath(), dst.CurrentPath())
	assert.Equal(t, value.Number(1), dst.CurrentParams()["step"])

	// The future half survived with its types intact.
	dst.Forwards()
	assert.Equal(t, "/b", dst.CurrentPath())
	assert.Equal(t, value.Number(42), dst.CurrentParams()["id"])
	assert.Equal(t, value.Bool(true), dst.CurrentParams()["pinned"])
	assert.Equal(t, "minecraft",
		dst.CurrentProps()["resource"].Structured().(map[string]any)["name"])
}

func TestConsumeIsExactlyOnce(t *testing.T) {
	src := newTestRouter(t)
	src.Navigate("/a", nil, nil)

	ch := NewChannel(NewMemoryStore(0), nil)
	id, err := ch.Begin(Capture(src))
	require.NoError(t, err)

	first, err := ch.Consume(id)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := ch.Consume(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, second)
}

func TestCaptureRunsProviderForLiveState(t *testing.T) {
	src := newTestRouter(t)
	src.Navigate("/a", nil, nil)
	src.RegisterStateProvider("/a", func() value.Params {
		return value.Params{"scroll": value.Number(77)}
	})

	snap := Capture(src)
	assert.Equal(t, value.Number(77), snap.Props["scroll"])
}

func TestConsumeUnknownID(t *testing.T) {
	ch := NewChannel(NewMemoryStore(0), nil)
	_, err := ch.Consume("never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsumeCorruptPayload(t *testing.T) {
	store := NewMemoryStore(0)
	require.NoError(t, store.Put("bad", []byte("{not json")))

	ch := NewChannel(store, nil)
	_, err := ch.Consume("bad")
	assert.Error(t, err)
}
