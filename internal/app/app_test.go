package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/atomic"
)

const rickJSON = `{"id":1,"name":"Rick Sanchez","status":"Alive","species":"Human","type":"","gender":"Male","image":"https://x/1.jpeg"}`

func newAPI(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Inc()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/character":
			fmt.Fprintf(w, `{"info":{"count":1,"pages":1},"results":[%s]}`, rickJSON)
		case "/api/character/1":
			fmt.Fprint(w, rickJSON)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func runPlain(t *testing.T, server *httptest.Server, opts Options) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MORTY_API_BASE_URL", server.URL+"/api/")
	t.Setenv("MORTY_LOG_FILE", filepath.Join(home, "morty.log"))

	var stdout, stderr bytes.Buffer
	opts.ConfigPath = filepath.Join(home, "missing.toml")
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	err := Run(context.Background(), opts)
	return stdout.String(), err
}

func TestRun_PrintListsFirstPage(t *testing.T) {
	server, hits := newAPI(t)

	out, err := runPlain(t, server, Options{Print: true, Language: "en"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, want := range []string{"Rick Sanchez", "Alive", "Human", "page 1 of 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("requests = %d, want 1", got)
	}
}

func TestRun_ShowPrintsOneCharacter(t *testing.T) {
	server, _ := newAPI(t)

	out, err := runPlain(t, server, Options{Show: "1", Language: "ru"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, want := range []string{"Имя", "Rick Sanchez", "https://x/1.jpeg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ShowMalformedIDFailsWithoutRequest(t *testing.T) {
	server, hits := newAPI(t)

	for _, raw := range []string{"abc", "0", "-1", "+7"} {
		out, err := runPlain(t, server, Options{Show: raw, Language: "ru"})
		if !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("Show(%q) error = %v, want ErrFetchFailed", raw, err)
		}
		if !strings.Contains(err.Error(), "некорректный идентификатор") {
			t.Fatalf("Show(%q) error = %q, want localized invalid id reason", raw, err)
		}
		if out != "" {
			t.Fatalf("Show(%q) wrote output %q, want none", raw, out)
		}
	}
	if got := hits.Load(); got != 0 {
		t.Fatalf("requests = %d, want 0", got)
	}
}

func TestRun_ShowNotFound(t *testing.T) {
	server, _ := newAPI(t)

	_, err := runPlain(t, server, Options{Show: "42", Language: "en"})
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Run error = %v, want ErrFetchFailed", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("Run error = %q, want it to mention 404", err)
	}
}

func TestRun_RejectsUnsupportedLanguage(t *testing.T) {
	server, hits := newAPI(t)

	_, err := runPlain(t, server, Options{Print: true, Language: "tlh"})
	if err == nil || !strings.Contains(err.Error(), "unsupported ui.language") {
		t.Fatalf("Run error = %v, want unsupported ui.language", err)
	}
	if got := hits.Load(); got != 0 {
		t.Fatalf("requests = %d, want 0", got)
	}
}

func TestStartPath(t *testing.T) {
	tests := map[string]string{
		"":    "",
		"7":   "character_detail/7",
		"abc": "character_detail/abc",
	}
	for open, want := range tests {
		if got := startPath(open); got != want {
			t.Fatalf("startPath(%q) = %q, want %q", open, got, want)
		}
	}
}
