package app

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/config"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/logging"
	"github.com/five82/morty/internal/prefs"
	"github.com/five82/morty/internal/preview"
	"github.com/five82/morty/internal/rickmorty"
	"github.com/five82/morty/internal/route"
	"github.com/five82/morty/internal/ui"
)

// Options configure one morty invocation.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/morty/prefs.toml
	Language   string // overrides ui.language when set

	// Print writes the first listing page as a table instead of starting
	// the TUI.
	Print bool
	// Show prints a single character. The raw value goes through the same
	// id decoding as the detail route.
	Show string
	// Open starts the TUI on the detail screen for this id.
	Open string

	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

func (o Options) plain() bool {
	return o.Print || o.Show != ""
}

// Run wires configuration, logging, the API client and either the TUI or
// plain-text output, and blocks until done or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Language != "" {
		lang, err := config.NormalizeLanguage(opts.Language)
		if err != nil {
			return err
		}
		cfg.UI.Language = lang
	}

	logger, closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}, opts.stderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	loc, err := locale.New(cfg.UI.Language)
	if err != nil {
		return fmt.Errorf("init locale: %w", err)
	}

	client, err := rickmorty.NewClient(cfg.API.BaseURL,
		rickmorty.WithTimeout(cfg.API.Timeout),
		rickmorty.WithUserAgent(cfg.API.UserAgent),
		rickmorty.WithRateLimit(cfg.API.RequestsPerSecond),
		rickmorty.WithMaxImageBytes(cfg.API.MaxImageBytes),
		rickmorty.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	defer func() { _ = client.Close() }()

	svc := catalog.NewService(client)
	logger.WithFields(log.Fields{
		"base_url": client.BaseURL(),
		"language": loc.Tag().String(),
		"plain":    opts.plain(),
	}).Info("morty starting")

	out := printer{w: opts.stdout(), svc: svc, loc: loc, logger: logger}
	switch {
	case opts.Show != "":
		return out.item(ctx, opts.Show)
	case opts.Print:
		return out.list(ctx)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.WithField("path", prefsPath).Warnf("ignoring prefs: %v", err)
	}

	var previews ui.PreviewLoader
	if cfg.UI.Images {
		previews = preview.NewLoader(client, preview.WithLogger(logger))
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Service:   svc,
		Previews:  previews,
		Localizer: loc,
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		LogFile:   cfg.Log.File,
		StartPath: startPath(opts.Open),
	})
}

func startPath(open string) string {
	if open == "" {
		return ""
	}
	return route.SegmentPath(open)
}
