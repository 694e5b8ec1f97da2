// Package app provides the orchestration layer for the storefront application.
//
// # Overview
//
// This package wires together configuration, logging, the product client,
// local preferences and the view status store. It is the composition root:
// every collaborator is created here and passed down explicitly.
//
// # Architecture
//
//	┌──────────────┐
//	│   Open()     │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read config.toml, apply flag overrides
//	       ├─────> logging.New()         JSON log file (or no-op)
//	       ├─────> fakestore.NewClient() HTTP client for the product API
//	       ├─────> prefs.OpenFile()      Local storage for favorites and theme
//	       └─────> state.Store{}         loading → success | error
//
//	Session.Browse() ──> ui.Run()         TUI (blocks)
//	Session.LoadCatalog() ──> one fetch   CLI commands
//
// # Loading
//
// LoadCatalog drives a single fetch through the status store: Begin enters
// loading, then Resolve or Fail settles it. There is no polling and no
// automatic retry; the TUI retries only when the user asks.
//
// # Error Handling
//
// Fatal errors (returned from Open):
//   - Config file unreadable or invalid
//   - Log file or storage path unusable
//   - Malformed API base URL
//
// Recoverable conditions (logged, never returned):
//   - Missing or malformed preferences
//   - Failed preference writes
//
// A failed catalog fetch is a view state, not a fatal error.
package app
