// Package preview turns a character's image URI into a small terminal
// thumbnail. Previews are decoration: a failed fetch or decode never touches
// the detail screen's fetch state.
package preview
