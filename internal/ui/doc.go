// Package ui implements dex's terminal interface with Bubble Tea.
//
// # Layout
//
//	┌ header: logo, load phase, counts, language, image variant ┐
//	│ command bar: key hints for the current mode                │
//	├────────────────────────────────────────────────────────────┤
//	│ content: loading spinner | failure screen | list | detail  │
//	└────────────────────────────────────────────────────────────┘
//
// # Data flow
//
// Init asks the shared state.Store for an activation token and, if granted,
// runs the catalog load as a tea.Cmd. The result returns as a message carrying
// the token; the Store drops it when it is stale or the program is shutting
// down. Once ready, every change to the search, type filter, generation filter,
// sort key or language recomputes the visible list with catalog.Apply. The
// source collection is never reordered.
//
// # Modes
//
// Keys are routed by mode, first match wins: help overlay, search input,
// detail overlay, then the list. The detail overlay is a Modal backed by a
// viewport; language and image-variant toggles re-render it in place because
// the list and the overlay share one catalog.Preferences value.
//
// The theme is the only preference written to disk (internal/prefs).
package ui
