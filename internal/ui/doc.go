// Package ui provides the terminal dashboard for bedboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never talks to the housing feed itself:
// the fetch session writes into a state.Store and the UI re-reads a snapshot
// every second, recomputing the grouped view from the snapshot and the
// current filter on each change.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key dispatch and Run
//   - header.go: Status bar, filter bar and command bar
//   - grid.go: Building and room grid plus the titled box frame
//   - filters.go: Filter option cycling
//   - logs.go: Session log view backed by logtail
//   - help.go: Keyboard shortcut overlay
//   - theme.go, style_helpers.go: Palettes and background-safe rendering
//
// # Terminal States
//
// Before the first fetch resolves the rooms view shows only "Loading...".
// While the last fetch has failed it shows only the error and a retry hint.
// A later successful fetch returns to the grid.
//
// # Preferences
//
// Theme, filters and the poll interval are written to the prefs file when
// they change. The search query is saved when the search prompt is closed.
package ui
