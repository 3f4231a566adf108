package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var (
	// allSupportedLanguages is the master list of UI languages.
	allSupportedLanguages = []SupportedLanguage{
		{
			Code:        "en",
			VerboseName: "English",
			Tag:         language.English,
		},
		{
			Code:        "hi",
			VerboseName: "हिन्दी",
			Tag:         language.Hindi,
		},
	}

	// SupportedLanguages is the default list.
	SupportedLanguages = allSupportedLanguages
)

// GetSupportedLanguages returns the languages whose codes appear in the
// whitelist; a nil or empty whitelist returns the full list.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}

	whitelistMap := make(map[string]bool)
	for _, code := range whitelist {
		whitelistMap[code] = true
	}

	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if whitelistMap[lang.Code] {
			filtered = append(filtered, lang)
		}
	}

	return filtered
}

var ErrNoLocalizer = errors.New("localizer not found in context")

type contextKey int

const (
	localizerKey contextKey = iota
	localeKey
)

func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey, l)
}

// UseLocalizer returns the request's localizer. The second return is
// false outside the i18n middleware.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(localizerKey).(*i18n.Localizer)
	return l, ok
}

func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey, tag)
}

func UseLocale(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey).(language.Tag)
	return tag, ok
}

// MustT translates key with the request's localizer, panicking if the
// middleware did not run.
func MustT(ctx context.Context, key string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	return l.MustLocalize(&i18n.LocalizeConfig{MessageID: key})
}

// T translates key, falling back to the key itself when no localizer or
// message is available.
func T(ctx context.Context, key string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		return key
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
