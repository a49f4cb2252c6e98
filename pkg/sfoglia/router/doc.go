// Package router implements the in-process navigation and history
// engine for a single panel surface: it swaps the displayed view
// without a reload, tracks back/forward history with branch
// invalidation, and separates URL-visible route params from transient
// component props.
//
// # Basic Usage
//
//	reg := router.NewRegistry(nil, nil)
//	reg.Register(router.RouteEntry{Key: "/resources", Name: "Resources", Render: renderResources})
//	reg.Register(router.RouteEntry{Key: "404", Name: "Not Found", Render: renderNotFound})
//
//	r, err := router.New(router.Config{
//	    Registry: reg,
//	    Codec:    deeplink.NewCodec("", nil),
//	})
//	if err != nil {
//	    return err
//	}
//
//	r.Navigate("/resources", nil, nil)                          // bootstrap: no history entry
//	r.Navigate("/resources", value.Params{"id": value.Number(7)}, nil)
//	r.UpdateQuery("q", value.String("minecraft"), false)        // no history entry
//	r.Backwards()                                               // instant, cached props
//
// # Params vs Props
//
// Params are URL-visible and survive the deep-link round trip: a
// selected id, the active tab. Props carry larger payloads that are not
// URL-safe, typically a fetched object passed eagerly so the target
// page skips a redundant network call. Both are copied into history
// entries so later mutation cannot corrupt the stack.
//
// # State Providers
//
// A page owning state the router never sees (scroll position, open
// accordion) registers a provider while mounted:
//
//	r.RegisterStateProvider("/resources", func() value.Params {
//	    return value.Params{"scroll": value.Number(float64(list.Offset()))}
//	})
//
// The provider runs only at snapshot time (history push, handoff), so
// the captured state is always live.
//
// # Concurrency
//
// A Router is single-goroutine: every operation completes synchronously
// before the next observable change. Asynchronous work lives at the
// edges (the refetch callback, the pages' own fetching); the router's
// bookkeeping never awaits it.
package router
