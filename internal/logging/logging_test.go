package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup_WritesToWriterWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Setup(Options{Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer closer.Close()

	logger.WithField("op", "list").Debug("hello")

	out := buf.String()
	if !strings.Contains(out, "level=debug") || !strings.Contains(out, "op=list") {
		t.Fatalf("output = %q, want level and field", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("output contains colour escapes: %q", out)
	}
}

func TestSetup_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "morty.log")

	logger, closer, err := Setup(Options{File: path}, nil)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Info("started")
	logger.Debug("suppressed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `msg=started`) {
		t.Fatalf("log file = %q, want started entry", data)
	}
	if strings.Contains(string(data), "suppressed") {
		t.Fatalf("log file contains debug entry at default info level")
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("level = %v, want info", logger.GetLevel())
	}
}

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := Setup(Options{Level: "chatty"}, nil); err == nil {
		t.Fatalf("Setup returned nil error, want parse error")
	}
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero", maxLines: 0, expected: nil},
		{name: "partial", maxLines: 5, expected: all[5:]},
		{name: "exact", maxLines: 10, expected: all},
		{name: "more than exists", maxLines: 20, expected: all},
		{name: "wraps ring", maxLines: 3, expected: all[7:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Tail = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Tail = %v, %v, want nil, nil", lines, err)
	}
}

func TestLineLevel(t *testing.T) {
	cases := map[string]string{
		`time="2026-10-15 14:32:15" level=warning msg="fetch failed"`: "warning",
		`time="x" level=info`: "info",
		`plain text`:          "",
	}
	for line, want := range cases {
		if got := LineLevel(line); got != want {
			t.Fatalf("LineLevel(%q) = %q, want %q", line, got, want)
		}
	}
}
