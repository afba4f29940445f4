// Package logging configures the logrus logger shared by every morty
// component and reads back the tail of the log file for the TUI's log
// drawer.
//
// Entries use logrus' text formatter without colours so the file stays
// greppable:
//
//	time="2026-10-15 14:32:15" level=warning msg="fetch failed" controller=list reason="network unavailable"
//
// Tail reads the last N lines with a fixed-size ring buffer, so memory
// stays bounded no matter how large the file grows.
package logging
