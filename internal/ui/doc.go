// Package ui is morty's Bubble Tea terminal interface.
//
// # Screens
//
// Two screens share one Model, selected by the top of a route.Stack:
//
//   - List: the first page of characters, one row each (name, status, species)
//   - Detail: one character, reached via the "character_detail/<id>" route
//
// Each screen owns a state.Controller. Activating a screen returns a fetch
// closure that runs as a tea.Cmd; its Result comes back as a message and is
// handed to Resolve, which drops anything belonging to an earlier
// activation. The panes subscribe to their controller: the list cursor
// restores the previous selection when a page becomes Ready and the detail
// viewport re-renders on each transition. Leaving a screen deactivates its
// controller, so the list fetches again when the user comes back from a
// detail screen.
//
// While a fetch is pending the screen shows a spinner. A failed fetch shows
// the localized failure text in the danger color; navigation keeps working.
//
// # Extras
//
//   - Lazy image previews on the detail screen (see package preview); a
//     failed preview falls back to printing the image URI
//   - A log drawer (L) tailing the log file
//   - Theme cycling (T) persisted through package prefs
//   - A help overlay (?)
package ui
