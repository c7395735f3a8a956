// Package ui provides the terminal favorites page for clusterfav.
//
// # Architecture Overview
//
// The page is a Bubble Tea program built around a single Model. It reads
// the favorites of the active cluster through favorites.Store.Menu and
// re-renders whenever the store publishes a Change on its subscription
// channel, so mutations made elsewhere in the process show up immediately.
//
// # Package Structure
//
//   - app.go: Model, Options, Run and the Update/View entry points
//   - handlers.go: key handling for items and group headers
//   - input.go: text prompt for new groups, renames and cluster switching
//   - reorder.go: pure helpers that compute reorder and group-cycling targets
//   - view.go: header, list and footer rendering
//   - help.go: keyboard shortcut overlay
//   - theme.go: color themes and lipgloss styles
//
// # Layout
//
// Ungrouped favorites are listed first, followed by one header per group
// with its item count. Collapsed groups hide their items. Moving a favorite
// up or down swaps it with its neighbour inside the same section and hands
// the full new order to ReorderFavorites.
//
// # Key Bindings
//
//   - j/k: Move the cursor
//   - K/J: Move the selected favorite up/down
//   - enter: Open the selected favorite (the page exits and returns it)
//   - space: Expand or collapse a group
//   - n: New group
//   - a/u: Move the favorite to the next group / out of its group
//   - r: Rename the favorite
//   - d: Remove the favorite
//   - x/X: Delete a group, keeping or deleting its favorites
//   - c: Switch cluster
//   - T: Cycle theme
//   - ?/h: Help
//   - q or Ctrl+C: Exit
package ui
