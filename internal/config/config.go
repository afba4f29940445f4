package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything morty reads from config.toml and MORTY_* env vars.
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds REST API client settings.
type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	MaxImageBytes     int64         `mapstructure:"max_image_bytes"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string `mapstructure:"language"`
	Images   bool   `mapstructure:"images"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	envPrefix = "MORTY"

	defaultConfigPath = "~/.config/morty/config.toml"
	defaultBaseURL    = "https://rickandmortyapi.com/api/"
	defaultTimeout    = 10 * time.Second
	defaultUserAgent  = "morty/0.1"
	defaultLanguage   = "ru"
	defaultLogLevel   = "info"
	defaultLogFile    = "~/.local/state/morty/morty.log"

	defaultMaxImageBytes int64 = 2 << 20
)

var supportedLanguages = []string{"en", "ru"}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config file at path (or the default location), applies
// MORTY_* environment overrides and falls back to defaults for anything
// missing. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")

	if _, err := os.Stat(resolved); err == nil {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.timeout", defaultTimeout)
	v.SetDefault("api.user_agent", defaultUserAgent)
	v.SetDefault("api.requests_per_second", 0)
	v.SetDefault("api.max_image_bytes", defaultMaxImageBytes)

	v.SetDefault("ui.language", defaultLanguage)
	v.SetDefault("ui.images", true)

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.file", defaultLogFile)
}

func (c *Config) normalize() error {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultTimeout
	}
	c.API.UserAgent = strings.TrimSpace(c.API.UserAgent)
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}
	if c.API.RequestsPerSecond < 0 {
		c.API.RequestsPerSecond = 0
	}
	if c.API.MaxImageBytes <= 0 {
		c.API.MaxImageBytes = defaultMaxImageBytes
	}

	lang, err := NormalizeLanguage(c.UI.Language)
	if err != nil {
		return err
	}
	c.UI.Language = lang

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	file := strings.TrimSpace(c.Log.File)
	if file == "" {
		file = defaultLogFile
	}
	c.Log.File = mustExpand(file)
	return nil
}

// NormalizeLanguage lower-cases lang and checks it is supported. Empty
// selects the default.
func NormalizeLanguage(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return defaultLanguage, nil
	}
	for _, l := range supportedLanguages {
		if l == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported ui.language %q (want one of %s)", lang, strings.Join(supportedLanguages, ", "))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
