// Package app is the composition root for morty.
//
// Run loads configuration, sets up logging and the localizer, builds the
// rate-limited API client and the catalog service, then hands off to one of
// two front ends:
//
//   - the Bubble Tea TUI (ui.Run), the default
//   - plain-text output for -print and -show, which drives the same
//     fetch-state controllers synchronously and writes a table to stdout
//
// Plain output uses the same id decoding and failure descriptions as the
// detail screen, so "morty -show abc" fails with the localized invalid-id
// reason without touching the network. A Failed state is returned as an
// error wrapping ErrFetchFailed.
//
// Preferences (theme, log drawer) are only read in TUI mode; a broken prefs
// file is logged and ignored.
package app
