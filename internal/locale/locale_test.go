package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{in: "ru", want: language.Russian},
		{in: "en", want: language.English},
		{in: "en-GB", want: language.English},
		{in: "ru-RU", want: language.Russian},
		{in: "", want: language.Russian},
		{in: "!!", want: language.Russian},
	}
	for _, tt := range tests {
		if got := Match(tt.in); got != tt.want {
			t.Fatalf("Match(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadError(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{lang: "ru", want: "Ошибка загрузки: сеть недоступна"},
		{lang: "en", want: "Loading error: network unavailable"},
	}
	for _, tt := range tests {
		l, err := New(tt.lang)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", tt.lang, err)
		}
		got := l.LoadError(l.T(MsgFailureNetwork, nil))
		if got != tt.want {
			t.Fatalf("LoadError(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestEveryMessageTranslated(t *testing.T) {
	ids := []string{
		MsgLoadError, MsgFailureStatus, MsgFailureTimeout, MsgFailureCancelled,
		MsgFailureNetwork, MsgFailureDecode, MsgFailureInvalidID, MsgFailureOther,
		MsgListTitle, MsgDetailTitle, MsgLoading, MsgEmptyList, MsgPageSummary,
		MsgPreviewLoading, MsgLogsTitle, MsgLogsEmpty, MsgHelpTitle,
		MsgFieldID, MsgFieldName, MsgFieldStatus, MsgFieldSpecies, MsgFieldType,
		MsgFieldGender, MsgFieldImage,
		MsgKeyUp, MsgKeyDown, MsgKeyOpen, MsgKeyBack, MsgKeyReload, MsgKeyTheme,
		MsgKeyLogs, MsgKeyHelp, MsgKeyQuit,
	}
	for _, tag := range Supported {
		l, err := New(tag.String())
		if err != nil {
			t.Fatalf("New(%v) returned error: %v", tag, err)
		}
		for _, id := range ids {
			if got := l.T(id, map[string]any{"Details": "x", "Status": "x", "Error": "x", "Page": 1, "Pages": 1, "Count": 1}); got == id {
				t.Fatalf("%v: message %q not translated", tag, id)
			}
		}
	}
}

func TestT_UnknownIDRendersID(t *testing.T) {
	l, err := New("en")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := l.T("no_such_message", nil); got != "no_such_message" {
		t.Fatalf("T = %q, want id", got)
	}
}

func TestStatusAndGender(t *testing.T) {
	ru, err := New("ru")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := ru.Status("Alive"); got != "Жив" {
		t.Fatalf("Status(Alive) = %q, want Жив", got)
	}
	if got := ru.Status("unknown"); got != "Неизвестно" {
		t.Fatalf("Status(unknown) = %q, want Неизвестно", got)
	}

	en, err := New("en")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := en.Gender("Genderless"); got != "Genderless" {
		t.Fatalf("Gender(Genderless) = %q", got)
	}
	if got := en.Status("zombie"); got != "Zombie" {
		t.Fatalf("Status(zombie) = %q, want title-cased passthrough", got)
	}
}
