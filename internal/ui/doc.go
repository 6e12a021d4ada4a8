// Package ui contains the Bubble Tea program that powers the tile grid.
// The Model focuses on message orchestration while dedicated helpers own
// input, rendering, and backend sync.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window resizes, activation results,
//     manifest reload events).
//   - Key handling (input.go) maps arrow and page keys onto grid moves,
//     routes printable runes into the filter, and turns enter/space into
//     tile activations. Bindings that collide with filter typing (h/j/k/l,
//     q, space) apply only while the filter is empty. An inputActive flag
//     lets the host suspend navigation without tearing the handler registry
//     down.
//   - Grid state lives in internal/grid: the collection, column metrics,
//     focus navigator, and viewport follower. The Model reacts to the
//     navigator's focus-changed events by re-centering the viewport; the
//     focus visual itself is derived at render time from the focused index,
//     never stored on the tiles.
//
// Backend interactions:
//   - A backend.Watcher streams manifest reload events; Update waits on the
//     channel and hands each event to applyBackendEvent, which repopulates
//     the grid (resetting focus to the first tile).
//   - Tile activations run asynchronously through the internal/ui/command
//     bus, which serialises execution and reports a command.Result message
//     back into the update loop.
package ui
