package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/rickmorty"
	"github.com/five82/morty/internal/route"
	"github.com/five82/morty/internal/state"
)

func TestNewDescriber(t *testing.T) {
	tests := []struct {
		name string
		lang string
		err  error
		want string
	}{
		{
			name: "404",
			lang: "ru",
			err:  &rickmorty.NetworkError{StatusCode: 404, Status: "404 Not Found"},
			want: "Ошибка загрузки: сервер вернул 404 Not Found",
		},
		{
			name: "timeout",
			lang: "en",
			err:  fmt.Errorf("wrapped: %w", &rickmorty.NetworkError{Err: context.DeadlineExceeded}),
			want: "Loading error: request timed out",
		},
		{
			name: "decode",
			lang: "ru",
			err:  &rickmorty.DecodeError{Err: errors.New("bad json")},
			want: "Ошибка загрузки: неожиданный формат ответа",
		},
		{
			name: "cancelled",
			lang: "en",
			err:  context.Canceled,
			want: "Loading error: request cancelled",
		},
		{
			name: "invalid route id",
			lang: "en",
			err:  fmt.Errorf("%w: %q", route.ErrInvalidItemID, "abc"),
			want: "Loading error: invalid character id",
		},
		{
			name: "invalid service id",
			lang: "ru",
			err:  catalog.ErrInvalidID,
			want: "Ошибка загрузки: некорректный идентификатор персонажа",
		},
		{
			name: "other",
			lang: "en",
			err:  errors.New("disk on fire"),
			want: "Loading error: unknown error",
		},
		{
			name: "other ru",
			lang: "ru",
			err:  errors.New("disk on fire"),
			want: "Ошибка загрузки: неизвестная ошибка",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := locale.New(tt.lang)
			if err != nil {
				t.Fatalf("locale.New returned error: %v", err)
			}
			if got := NewDescriber(loc)(tt.err); got != tt.want {
				t.Fatalf("describe = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v", names)
	}
	for i, name := range names {
		if got, want := NextTheme(name), names[(i+1)%len(names)]; got != want {
			t.Fatalf("NextTheme(%s) = %s, want %s", name, got, want)
		}
	}
	if got := NextTheme("Dracula"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %s, want Nightfox", got)
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %s, want Nightfox", got)
	}
}

func TestThemeStatusColor(t *testing.T) {
	th := GetTheme("Slate")
	if got := th.StatusColor(" Alive "); got != th.StatusColors["alive"] {
		t.Fatalf("StatusColor(Alive) = %q", got)
	}
	if got := th.StatusColor("zombie"); got != th.Muted {
		t.Fatalf("StatusColor(zombie) = %q, want muted %q", got, th.Muted)
	}
}

func TestRenderTitledBox_FixedSize(t *testing.T) {
	m := Model{theme: GetTheme("Nightfox")}
	box := m.renderTitledBox("Персонажи", "one\n"+strings.Repeat("x", 80)+"\nthree\nfour\nfive", 20, 5, true)

	lines := strings.Split(box, "\n")
	if len(lines) != 5 {
		t.Fatalf("box has %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[0], "Персонажи") {
		t.Fatalf("title missing from top border: %q", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Rick Sanchez", 6); lipgloss.Width(got) > 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Rick", 10); got != "Rick" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("Rick", 0); got != "" {
		t.Fatalf("truncate zero = %q", got)
	}
}

func TestLogDrawer_TailAndGeneration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morty.log")
	content := "time=\"x\" level=info msg=one\ntime=\"x\" level=warning msg=two\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d := logDrawer{path: path}
	d.resize(80, 8)
	if cmd := d.toggle(); cmd == nil || !d.open {
		t.Fatalf("toggle did not open the drawer")
	}

	msg := tailLogsCmd(d.path, d.gen)().(logTailMsg)
	d.apply(msg, GetTheme("Nightfox"))
	if len(d.lines) != 2 || !strings.Contains(d.lines[1], "msg=two") {
		t.Fatalf("lines = %v", d.lines)
	}

	stale := logTailMsg{gen: d.gen - 1, lines: []string{"old"}}
	d.apply(stale, GetTheme("Nightfox"))
	if len(d.lines) != 2 {
		t.Fatalf("stale tail applied: %v", d.lines)
	}

	if cmd := d.toggle(); cmd != nil || d.open {
		t.Fatalf("second toggle should close without commands")
	}
}

func TestLevelStyle(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	if got := levelStyle("warning", styles).GetForeground(); got != styles.WarningText.GetForeground() {
		t.Fatalf("warning style foreground = %v", got)
	}
	if got := levelStyle("error", styles).GetForeground(); got != styles.DangerText.GetForeground() {
		t.Fatalf("error style foreground = %v", got)
	}
}

func TestListCursor_OnState(t *testing.T) {
	page := catalog.ItemPage{Items: []catalog.Item{{ID: 1}, {ID: 2}, {ID: 3}}}

	c := &listCursor{restoreID: 3, rows: 2}
	c.onState(state.Pending[catalog.ItemPage]())
	if c.selected != 0 || c.restoreID != 3 {
		t.Fatalf("pending changed cursor: %+v", *c)
	}

	c.onState(state.Ready(page))
	if c.selected != 2 || c.offset != 1 || c.restoreID != 0 {
		t.Fatalf("cursor = %+v, want selected 2, offset 1, restore cleared", *c)
	}

	c.onState(state.Ready(catalog.ItemPage{Items: page.Items[:1]}))
	if c.selected != 0 || c.offset != 0 {
		t.Fatalf("cursor = %+v, want clamped to the shorter page", *c)
	}
}
