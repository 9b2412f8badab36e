package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// DefaultLanguage is used when no default is configured and no better match
// is found for a requested language.
const DefaultLanguage = "en"

// Translator renders catalog messages for a requested language. Catalogs are
// loaded once at construction; a Translator is immutable and safe for
// concurrent use.
type Translator struct {
	catalog       Catalog
	languages     []string // canonical codes, default first
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures Translator construction.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no match.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) { t.defaultLang = lang }
}

// WithFallbackToKey makes T return the key itself instead of an empty string
// when a message is missing. Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger routes missing-translation reports to the given logger. By
// default they are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New loads the catalog from source and builds a Translator. Every catalog
// language must parse as a BCP 47 tag; an empty catalog is an error.
func New(ctx context.Context, source Source, opts ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	t.catalog = catalog

	if err := t.buildMatcher(); err != nil {
		return nil, err
	}

	t.logger.InfoContext(ctx, "translations loaded", "languages", t.languages)
	return t, nil
}

// buildMatcher validates catalog language codes and prepares the BCP 47
// matcher with the default language as the first (preferred) tag.
func (t *Translator) buildMatcher() error {
	langs := make([]string, 0, len(t.catalog))
	for lang := range t.catalog {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	ordered := make([]string, 0, len(langs))
	if _, ok := t.catalog[t.defaultLang]; ok {
		ordered = append(ordered, t.defaultLang)
	}
	for _, lang := range langs {
		if lang != t.defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		tags = append(tags, tag)
	}

	t.languages = ordered
	t.matcher = language.NewMatcher(tags)
	return nil
}

// Languages returns the catalog languages, default first.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// Match negotiates the best catalog language for the requested one:
// "en-US" resolves to "en" when only the base language has a catalog.
// Unknown languages resolve to the default.
func (t *Translator) Match(lang string) string {
	if _, ok := t.catalog[lang]; ok {
		return lang
	}

	requested, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}

	_, index, confidence := t.matcher.Match(requested)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.languages[index]
}

// Has reports whether a message exists for the exact language and key.
func (t *Translator) Has(lang, key string) bool {
	messages, ok := t.catalog[lang]
	if !ok {
		return false
	}
	_, ok = messages[key]
	return ok
}

// T renders the message for key in the best match for lang, substituting
// %{name} placeholders from params. Missing messages fall back to the key
// itself (or an empty string with fallback disabled).
func (t *Translator) T(lang, key string, params map[string]any) string {
	matched := t.Match(lang)

	tmpl, ok := t.catalog[matched][key]
	if !ok {
		t.logger.Warn("translation not found", "lang", matched, "key", key)
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return render(tmpl, params)
}

// TranslateError localizes structured validation failures. Each failure code
// is looked up under "validation.<code>" and rendered with the failure
// params; failures without a catalog entry keep their default message. Nil
// is returned for errors that carry no validation failures.
func (t *Translator) TranslateError(lang string, err error) []string {
	errs := validator.ExtractErrors(err)
	if errs == nil {
		return nil
	}

	matched := t.Match(lang)
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		key := "validation." + e.Code
		if tmpl, ok := t.catalog[matched][key]; ok {
			messages = append(messages, render(tmpl, e.Params))
			continue
		}
		t.logger.Warn("translation not found", "lang", matched, "key", key)
		messages = append(messages, e.Error())
	}
	return messages
}

// placeholderRegex finds named parameters in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes %{name} placeholders, leaving unknown ones literal.
func render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
