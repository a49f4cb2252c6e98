package handoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/value"
)

func TestAdoptPrefersHandoff(t *testing.T) {
	src := newTestRouter(t)
	src.Navigate("/a", nil, nil)
	src.Navigate("/b", value.Params{"id": value.Number(9)}, nil)

	ch := NewChannel(NewMemoryStore(0), nil)
	id, err := ch.Begin(Capture(src))
	require.NoError(t, err)

	dst := newTestRouter(t)
	codec := deeplink.NewCodec("", nil)
	Adopt(dst, ch, codec, AdoptOptions{
		HandoffID: id,
		StartURL:  "sfoglia:///a", // present but outranked
		Default:   "/home",
	}, nil)

	assert.Equal(t, "/b", dst.CurrentPath())
	assert.Equal(t, value.Number(9), dst.CurrentParams()["id"])
	assert.True(t, dst.CanGoBack(), "history came across with the handoff")
	assert.False(t, dst.CanGoForward())
}

func TestAdoptFallsBackToDeepLink(t *testing.T) {
	ch := NewChannel(NewMemoryStore(0), nil)
	codec := deeplink.NewCodec("", nil)

	dst := newTestRouter(t)
	Adopt(dst, ch, codec, AdoptOptions{
		HandoffID: "consumed-or-bogus",
		StartURL:  "sfoglia:///a?tab=mods",
		Default:   "/home",
	}, nil)

	assert.Equal(t, "/a", dst.CurrentPath())
	assert.Equal(t, value.String("mods"), dst.CurrentParams()["tab"])
	assert.False(t, dst.CanGoBack(), "deep-link boot starts with empty history")
}

func TestAdoptFallsBackToDefault(t *testing.T) {
	ch := NewChannel(NewMemoryStore(0), nil)
	codec := deeplink.NewCodec("", nil)

	dst := newTestRouter(t)
	Adopt(dst, ch, codec, AdoptOptions{
		HandoffID: "bogus",
		StartURL:  "wrongscheme://nope",
		Default:   "/home",
	}, nil)

	assert.Equal(t, "/home", dst.CurrentPath())
	assert.False(t, dst.CanGoBack())
}

func TestAdoptWithNoSourcesLandsOnDefault(t *testing.T) {
	ch := NewChannel(NewMemoryStore(0), nil)
	dst := newTestRouter(t)
	Adopt(dst, ch, deeplink.NewCodec("", nil), AdoptOptions{Default: "/home"}, nil)
	assert.Equal(t, "/home", dst.CurrentPath())
}
