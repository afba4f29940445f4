package locale

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message ids.
const (
	MsgLoadError        = "load_error"
	MsgFailureStatus    = "failure_status"
	MsgFailureTimeout   = "failure_timeout"
	MsgFailureCancelled = "failure_cancelled"
	MsgFailureNetwork   = "failure_network"
	MsgFailureDecode    = "failure_decode"
	MsgFailureInvalidID = "failure_invalid_id"
	MsgFailureOther     = "failure_other"

	MsgListTitle      = "list_title"
	MsgDetailTitle    = "detail_title"
	MsgLoading        = "loading"
	MsgEmptyList      = "empty_list"
	MsgPageSummary    = "page_summary"
	MsgPreviewLoading = "preview_loading"
	MsgLogsTitle      = "logs_title"
	MsgLogsEmpty      = "logs_empty"
	MsgHelpTitle      = "help_title"

	MsgFieldID      = "field_id"
	MsgFieldName    = "field_name"
	MsgFieldStatus  = "field_status"
	MsgFieldSpecies = "field_species"
	MsgFieldType    = "field_type"
	MsgFieldGender  = "field_gender"
	MsgFieldImage   = "field_image"

	MsgKeyUp     = "key_up"
	MsgKeyDown   = "key_down"
	MsgKeyOpen   = "key_open"
	MsgKeyBack   = "key_back"
	MsgKeyReload = "key_reload"
	MsgKeyTheme  = "key_theme"
	MsgKeyLogs   = "key_logs"
	MsgKeyHelp   = "key_help"
	MsgKeyQuit   = "key_quit"
)

// Supported lists the languages with message files, default first.
var Supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(Supported)

var loadBundle = sync.OnceValues(func() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, tag := range Supported {
		path := fmt.Sprintf("messages/active.%s.toml", tag)
		if _, err := bundle.LoadMessageFileFS(messageFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return bundle, nil
})

// Localizer renders messages in one language.
type Localizer struct {
	tag   language.Tag
	loc   *i18n.Localizer
	title cases.Caser
}

// Match picks the closest supported language for lang. Unparseable input
// selects the default.
func Match(lang string) language.Tag {
	parsed, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(parsed)
	return Supported[idx]
}

// New returns a Localizer for the supported language closest to lang.
func New(lang string) (*Localizer, error) {
	bundle, err := loadBundle()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	tag := Match(lang)
	return &Localizer{
		tag:   tag,
		loc:   i18n.NewLocalizer(bundle, tag.String()),
		title: cases.Title(tag),
	}, nil
}

// Tag returns the language messages are rendered in.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T renders message id with optional template data. Unknown ids render as
// the id itself so a missing translation is visible rather than blank.
func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// LoadError formats the message shown in place of content after a failed
// fetch.
func (l *Localizer) LoadError(details string) string {
	return l.T(MsgLoadError, map[string]any{"Details": details})
}

// Status localizes a character status as reported by the API.
func (l *Localizer) Status(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "alive":
		return l.T("status_alive", nil)
	case "dead":
		return l.T("status_dead", nil)
	case "unknown", "":
		return l.T("status_unknown", nil)
	}
	return l.title.String(status)
}

// Gender localizes a character gender as reported by the API.
func (l *Localizer) Gender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "female":
		return l.T("gender_female", nil)
	case "male":
		return l.T("gender_male", nil)
	case "genderless":
		return l.T("gender_genderless", nil)
	case "unknown", "":
		return l.T("gender_unknown", nil)
	}
	return l.title.String(gender)
}
