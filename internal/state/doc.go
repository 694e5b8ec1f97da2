// Package state tracks the view status of a storefront browsing session.
//
// # Overview
//
// A session starts in StatusLoading, moves to StatusSuccess once the catalog
// fetch resolves (an empty catalog included) or to StatusError when it fails.
// StatusError is terminal until the user asks for a retry, which calls Begin
// again and re-enters StatusLoading. There is no automatic retry.
//
//	           Begin
//	  ┌──────────────────────┐
//	  ↓                      │
//	loading ──Resolve──→ success
//	  │
//	  └──Fail──→ error ──Begin (retry)──→ loading
//
// # Concurrency Model
//
// The fetch runs off the UI loop and reports back through Resolve or Fail; the
// UI and the CLI read through Snapshot. Store guards its snapshot with a
// sync.RWMutex and Snapshot returns copies, so callers never share the
// catalog slice or the error value with the store.
//
// Begin refuses to start a second attempt while one is in flight, which keeps
// the session at one outstanding catalog request.
//
// # Usage Example
//
//	var store state.Store
//	if store.Begin() {
//		products, err := client.FetchCatalog(ctx)
//		if err != nil {
//			store.Fail(err)
//		} else {
//			store.Resolve(products)
//		}
//	}
//	snap := store.Snapshot()
//	if snap.Status == state.StatusError {
//		fmt.Println(snap.ErrorMessage())
//	}
package state
