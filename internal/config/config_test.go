package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("API.BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Timeout != defaultTimeout {
		t.Fatalf("API.Timeout = %v, want %v", cfg.API.Timeout, defaultTimeout)
	}
	if cfg.API.MaxImageBytes != defaultMaxImageBytes {
		t.Fatalf("API.MaxImageBytes = %d, want %d", cfg.API.MaxImageBytes, defaultMaxImageBytes)
	}
	if cfg.UI.Language != "ru" || !cfg.UI.Images {
		t.Fatalf("UI = %+v, want language ru with images", cfg.UI)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[api]
base_url = "  http://10.0.0.5:9999/api  "
timeout = "3s"
requests_per_second = 4

[ui]
language = " EN "
images = false

[log]
level = "DEBUG"
file = "  ~/.morty/debug.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://10.0.0.5:9999/api" {
		t.Fatalf("API.BaseURL = %q, want trimmed value", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Fatalf("API.Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.API.RequestsPerSecond != 4 {
		t.Fatalf("API.RequestsPerSecond = %d, want 4", cfg.API.RequestsPerSecond)
	}
	if cfg.UI.Language != "en" || cfg.UI.Images {
		t.Fatalf("UI = %+v, want en without images", cfg.UI)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MORTY_API_BASE_URL", "http://env.example/api")
	t.Setenv("MORTY_UI_LANGUAGE", "en")
	t.Setenv("MORTY_API_TIMEOUT", "750ms")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[api]
base_url = "http://file.example/api"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example/api" {
		t.Fatalf("API.BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.UI.Language != "en" {
		t.Fatalf("UI.Language = %q, want en", cfg.UI.Language)
	}
	if cfg.API.Timeout != 750*time.Millisecond {
		t.Fatalf("API.Timeout = %v, want 750ms", cfg.API.Timeout)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[api]
base_url = "   "
user_agent = ""
requests_per_second = -3

[log]
level = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("API.BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.UserAgent != defaultUserAgent {
		t.Fatalf("API.UserAgent = %q, want %q", cfg.API.UserAgent, defaultUserAgent)
	}
	if cfg.API.RequestsPerSecond != 0 {
		t.Fatalf("API.RequestsPerSecond = %d, want 0", cfg.API.RequestsPerSecond)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[api`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_UnsupportedLanguageFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MORTY_UI_LANGUAGE", "klingon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "unsupported ui.language") {
		t.Fatalf("Load error = %v, want unsupported language", err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{"": "ru", " RU ": "ru", "en": "en"}
	for in, want := range cases {
		got, err := NormalizeLanguage(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeLanguage(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
