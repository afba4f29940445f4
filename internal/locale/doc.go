// Package locale renders user-facing text in Russian or English.
//
// Messages live in embedded TOML files (messages/active.<lang>.toml) parsed
// by go-i18n through go-toml. Language selection goes through an x/text
// matcher, so "ru-RU" or "en-GB" resolve to the nearest supported language
// and anything unrecognised falls back to Russian.
package locale
