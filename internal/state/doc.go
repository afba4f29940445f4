// Package state implements the fetch-state controller shared by every screen.
//
// # Overview
//
// A screen that shows remote data goes through the same three states:
//
//	Pending ──> Ready(value)
//	        └─> Failed(reason)
//
// State[T] is that tagged union. Controller[P, T] owns one State for the
// lifetime of a screen and drives it from a Producer (a parameterized async
// fetch, such as "list page N" or "get item by id").
//
// # Activation Protocol
//
//  1. Activate(ctx, param) resets to Pending and hands back a Fetch closure.
//     Activating again with an equal param is a no-op.
//  2. The caller runs Fetch somewhere that may block (a Bubble Tea command,
//     a goroutine, or inline via Run). The producer is invoked once.
//  3. The caller passes the Result to Resolve on the owning goroutine, which
//     moves to Ready(value) or Failed(describe(err)).
//
// Fail(err) skips the producer entirely and lands on Failed; screens use it
// when their route parameter is missing or malformed.
//
// # Stale Results
//
// Every activation gets a new generation number (go.uber.org/atomic). A new
// activation, Fail or Deactivate bumps the generation and cancels the
// previous fetch context. Resolve drops any Result whose generation is not
// current, so an out-of-order completion for an old parameter can never
// overwrite the state of the new one.
//
//	Activate(1) ─ gen 1 ─┐
//	Activate(2) ─ gen 2 ─┼──> Resolve(gen 2)  applied
//	                     └──> Resolve(gen 1)  dropped
//
// # Concurrency Model
//
// The controller is not locked. All methods except the Fetch closure are
// called from the single goroutine that renders the screen; the closure only
// reads the atomic generation.
//
// # Error Messages
//
// Failed holds a display string produced by the Describer (WithDescriber),
// never the raw error. The default describer returns a fixed "fetch failed".
package state
