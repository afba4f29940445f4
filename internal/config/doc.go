// Package config loads morty's configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/morty/config.toml
//  3. If the file does not exist, start from defaults
//  4. Apply MORTY_* environment overrides (MORTY_API_BASE_URL, MORTY_UI_LANGUAGE, ...)
//  5. Blank or out-of-range values fall back to defaults
//
// Loading goes through a private viper instance so tests and callers never
// share global state.
//
// # TOML Format
//
//	[api]
//	base_url = "https://rickandmortyapi.com/api/"
//	timeout = "10s"
//	user_agent = "morty/0.1"
//	requests_per_second = 0   # 0 disables client-side pacing
//
//	[ui]
//	language = "ru"           # ru or en
//	images = true             # lazy image previews on the detail screen
//
//	[log]
//	level = "info"
//	file = "~/.local/state/morty/morty.log"
//
// # Error Handling
//
// Load returns an error when the file exists but cannot be parsed, or when
// ui.language names an unsupported language. A missing file is not an error.
package config
