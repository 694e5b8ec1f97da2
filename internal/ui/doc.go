// Package ui provides the storefront terminal user interface.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. All state changes happen in Update on
// the program's event loop; the catalog fetch runs as a tea.Cmd and reports
// back with a catalogLoadedMsg or catalogFailedMsg.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View, key handling and the fetch command
//   - header.go: Header bar, filter bar and footer help
//   - grid.go: Product cards, skeletons, pagination, empty state and error panel
//   - detail.go: Product detail viewport
//   - keys.go: Key bindings (bubbles/key)
//   - help.go: Help overlay
//   - theme.go: Light and dark palettes and their Lipgloss styles
//   - style_helpers.go: BgStyle for runs of text sharing one background
//
// # Load States
//
// The model mirrors state.Store:
//
//   - loading: eight skeleton cards and a spinner in the header
//   - error: "Oops! Something went wrong", the raw error message and a
//     "Try Again" hint; r starts a new fetch
//   - success: filter bar, card grid and "Page X of Y" when there is more than
//     one page
//
// # Filtering
//
// Search, category, sort and the favorites-only toggle are held by a
// catalog.Browser. Every change resets the grid to page 1. The visible page is
// recomputed from the catalog, filter state and favorites on every render.
//
// # Preferences
//
// Favorites and the light/dark theme are prefs stores. Toggling either writes
// the new value to local storage before the next render.
package ui
