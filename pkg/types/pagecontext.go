package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContextProvider carries per-request localization and metadata
// into templates. An interface so downstream projects can wrap the
// concrete PageContext with extra fields without touching this package.
type PageContextProvider interface {
	// T translates a message ID to the current locale with optional
	// template data. A prefix set via Namespace is prepended first.
	T(key string, args ...map[string]interface{}) string

	// TSafe is like T but returns an empty string on error instead of
	// panicking.
	TSafe(key string, args ...map[string]interface{}) string

	// Namespace returns a derived provider that prefixes every
	// translation key, so a feature's templates can use short keys.
	Namespace(prefix string) PageContextProvider

	// ToJSLocale converts the page locale to a JavaScript-compatible
	// locale string for Intl APIs. Unknown locales fall back to "en-US".
	ToJSLocale() string

	GetLocale() language.Tag
	GetURL() *url.URL
	GetLocalizer() *i18n.Localizer
}

// PageContext is the default PageContextProvider built by the i18n
// middleware for every request.
type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
	prefix    string
}

var _ PageContextProvider = (*PageContext)(nil)

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	if len(args) == 0 {
		return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID})
	}
	return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: args[0]})
}

func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("TSafe(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}

	result, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}

	return result
}

func (p *PageContext) Namespace(prefix string) PageContextProvider {
	return &PageContext{
		Locale:    p.Locale,
		URL:       p.URL,
		Localizer: p.Localizer,
		prefix:    prefix,
	}
}

func (p *PageContext) ToJSLocale() string {
	switch p.Locale.String() {
	case "en", "en-US":
		return "en-US"
	case "en-GB":
		return "en-GB"
	case "hi", "hi-IN":
		return "hi-IN"
	case "bn", "bn-BD":
		return "bn-BD"
	case "ta", "ta-IN":
		return "ta-IN"
	case "te", "te-IN":
		return "te-IN"
	default:
		return "en-US"
	}
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}
