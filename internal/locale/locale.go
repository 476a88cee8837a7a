// Package locale supplies month names, weekday names and UI strings per
// language key ("EN", "FR", "ZH").
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/lululau/datepick/internal/logfields"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is used when no language is configured.
const DefaultLang = "EN"

// Message IDs shared with the locale files.
const (
	MsgNextMonth  = "nav.next"
	MsgPrevMonth  = "nav.prev"
	MsgMonthTitle = "title.month"
	MsgHelpClosed = "help.closed"
	MsgHelpOpen   = "help.open"
	MsgInvalid    = "status.invalid"
	MsgCleared    = "status.cleared"
	MsgSelected   = "status.selected"
)

// WeekDay is a column header: a short label and the full name.
type WeekDay struct {
	Abbr  string
	Title string
}

// Provider looks up localized names. Months returns 12 names starting with
// January; WeekDays returns 7 entries starting with Sunday.
type Provider interface {
	Months(lang string) []string
	WeekDays(lang string) []WeekDay
	Message(lang, id string, data map[string]any) string
}

// ErrIncompleteTable is returned by Check when a Provider is missing month
// or weekday names.
var ErrIncompleteTable = errors.New("incomplete locale table")

// Check verifies that p has twelve month names and seven weekdays for lang.
func Check(p Provider, lang string) error {
	if n := len(p.Months(lang)); n != 12 {
		return fmt.Errorf("%w: %d month names for %s", ErrIncompleteTable, n, lang)
	}
	if n := len(p.WeekDays(lang)); n != 7 {
		return fmt.Errorf("%w: %d weekdays for %s", ErrIncompleteTable, n, lang)
	}
	return nil
}

// MonthName returns the localized name of m, or the English one when the
// table has no entry for it.
func MonthName(p Provider, lang string, m time.Month) string {
	months := p.Months(lang)
	if m < time.January || int(m) > len(months) {
		return m.String()
	}
	return months[m-1]
}

// Bundle is a Provider backed by the embedded go-i18n message files.
type Bundle struct {
	bundle *i18n.Bundle
	langs  []string

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
}

// NewBundle loads every embedded active.<lang>.json file.
func NewBundle() (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	b := &Bundle{
		bundle:     bundle,
		localizers: make(map[string]*i18n.Localizer),
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		b.langs = append(b.langs, strings.ToUpper(code))
	}
	return b, nil
}

// MustBundle is NewBundle for callers that cannot recover from a broken
// binary.
func MustBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		panic(err)
	}
	return b
}

// Languages lists the available language keys, upper-cased.
func (b *Bundle) Languages() []string {
	return append([]string(nil), b.langs...)
}

// Supports reports whether lang resolves to one of the embedded tables.
func (b *Bundle) Supports(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	matcher := language.NewMatcher(b.bundle.LanguageTags())
	_, _, confidence := matcher.Match(tag)
	return confidence >= language.High
}

func (b *Bundle) localizer(lang string) *i18n.Localizer {
	key := strings.ToLower(lang)
	if tag, err := language.Parse(lang); err == nil {
		key = tag.String()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if l, ok := b.localizers[key]; ok {
		return l
	}
	l := i18n.NewLocalizer(b.bundle, key)
	b.localizers[key] = l
	return l
}

// Message localizes id, falling back to English and then to id itself.
func (b *Bundle) Message(lang, id string, data map[string]any) string {
	msg, err := b.localizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug("missing translation",
			slog.String(logfields.KeyLang, lang),
			slog.String(logfields.KeyMessage, id),
			logfields.Error(err),
		)
		return id
	}
	return msg
}

// Months returns the twelve month names for lang.
func (b *Bundle) Months(lang string) []string {
	months := make([]string, 12)
	for i := range months {
		months[i] = b.Message(lang, fmt.Sprintf("month.%d", i+1), nil)
	}
	return months
}

// WeekDays returns the seven weekday headers for lang, Sunday first.
func (b *Bundle) WeekDays(lang string) []WeekDay {
	days := make([]WeekDay, 7)
	for i := range days {
		days[i] = WeekDay{
			Abbr:  b.Message(lang, fmt.Sprintf("weekday.%d.abbr", i), nil),
			Title: b.Message(lang, fmt.Sprintf("weekday.%d.title", i), nil),
		}
	}
	return days
}
