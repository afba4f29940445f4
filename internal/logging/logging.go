package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Options controls where and how verbosely morty logs.
type Options struct {
	Level string
	File  string
}

// Setup builds the process logger. When File is set, entries go there and
// the returned Closer releases it; otherwise they go to out. The TUI owns
// the terminal, so callers running it must pass a file.
func Setup(opts Options, out io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closer = file
	}
	if out == nil {
		out = io.Discard
	}
	logger.SetOutput(out)

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
