package i18n

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n resolves dot-separated keys against per-language dictionaries.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Nested dictionaries per language, walked segment by segment on lookup
	dictionaries map[string]Dictionary

	// Default/fallback language
	defaultLang string

	// Languages explicitly registered with WithLanguages
	declared map[string]struct{}

	// Pre-computed list of supported languages, default first
	languages []string
	supported map[string]struct{}

	// Plural rules registered with WithPluralRule; other languages use PluralRuleFor
	pluralRules map[string]PluralRule

	// Optional handler called when a key is missing in both the requested and default language
	missingKeyHandler func(lang, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		dictionaries: make(map[string]Dictionary),
		declared:     make(map[string]struct{}),
		pluralRules:  make(map[string]PluralRule),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	i.languages = i.buildLanguagesList()
	i.supported = make(map[string]struct{}, len(i.languages))
	for _, lang := range i.languages {
		i.supported[lang] = struct{}{}
	}

	return i, nil
}

// MustNew is like New but panics on error. Intended for application startup.
func MustNew(opts ...Option) *I18n {
	i, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return i
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages restricts the supported languages to the given set.
// The default language is always supported and listed first.
// Without this option the supported set is every language that has translations.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.declared[lang] = struct{}{}
			}
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a translation
// key is not found in the requested language nor in the default fallback.
// The handler is invoked before any caller-supplied fallback text is applied.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithPluralRule overrides the plural rule of a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if rule == nil {
			return fmt.Errorf("plural rule cannot be nil")
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithTranslations registers a nested dictionary for a language.
// Repeated calls for the same language merge top-level keys; later calls win.
// The dictionary is copied in depth, so the caller may reuse its maps.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}

		dict, ok := i.dictionaries[lang]
		if !ok {
			dict = make(Dictionary, len(translations))
			i.dictionaries[lang] = dict
		}
		for key, value := range translations {
			dict[key] = cloneValue(value)
		}

		return nil
	}
}

// cloneValue copies records and lists; leaves are immutable and shared.
func cloneValue(v any) any {
	switch node := v.(type) {
	case Dictionary:
		return cloneRecord(node)
	case map[string]any:
		return cloneRecord(node)
	case map[string]string:
		return maps.Clone(node)
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(node)
	default:
		return v
	}
}

func cloneRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for key, value := range record {
		out[key] = cloneValue(value)
	}
	return out
}

// T returns the display string for key in lang.
//
// Resolution order: requested language, default language, the first fallback
// argument, the key itself. A hit in the default language takes precedence over
// the caller's fallback text. Structured values (records, lists) never resolve.
func (i *I18n) T(lang, key string, fallback ...string) string {
	if value, ok := i.lookup(lang, key); ok {
		return value
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, key)
	}

	if len(fallback) > 0 {
		return fallback[0]
	}
	return key
}

// Tp is like T and replaces %{name} placeholders in the resolved text.
func (i *I18n) Tp(lang, key string, placeholders M, fallback ...string) string {
	return ReplacePlaceholders(i.T(lang, key, fallback...), placeholders)
}

// Tn returns the plural form of key matching n in lang, looking up
// key.<form> with the CLDR category of n. Missing categories fall back
// towards "other", then to the default language. The %{count} placeholder
// is n formatted for lang; placeholders may override it.
func (i *I18n) Tn(lang, key string, n int, placeholders ...M) string {
	value, ok := i.lookupPlural(lang, key, n)
	if !ok && lang != i.defaultLang {
		value, ok = i.lookupPlural(i.defaultLang, key, n)
	}
	if !ok {
		if i.missingKeyHandler != nil {
			i.missingKeyHandler(lang, key)
		}
		return key
	}

	merged := M{"count": FormatFor(lang).FormatInt(n)}
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(value, merged)
}

// PluralRule returns the rule used for lang.
func (i *I18n) PluralRule(lang string) PluralRule {
	if rule, ok := i.pluralRules[lang]; ok {
		return rule
	}
	return PluralRuleFor(lang)
}

func (i *I18n) lookupPlural(lang, key string, n int) (string, bool) {
	dict := i.dictionaries[lang]
	for _, form := range pluralFallback(i.PluralRule(lang)(n)) {
		if value, ok := Lookup(dict, key+"."+form); ok {
			return value, true
		}
	}
	return "", false
}

// Has reports whether key resolves to a display string in lang,
// including through the default language fallback.
func (i *I18n) Has(lang, key string) bool {
	_, ok := i.lookup(lang, key)
	return ok
}

func (i *I18n) lookup(lang, key string) (string, bool) {
	if value, ok := Lookup(i.dictionaries[lang], key); ok {
		return value, true
	}

	if lang != i.defaultLang {
		if value, ok := Lookup(i.dictionaries[i.defaultLang], key); ok {
			return value, true
		}
	}

	return "", false
}

// Languages returns all supported languages.
// The default language is always returned first, followed by other languages sorted alphabetically.
// This is an O(1) operation as the list is pre-computed during construction.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code configured for the I18n instance.
// If no default language was explicitly set, returns DefaultLang ("en").
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supports reports whether lang is one of the supported language codes.
func (i *I18n) Supports(lang string) bool {
	_, ok := i.supported[lang]
	return ok
}

// buildLanguagesList builds the pre-computed list of languages.
// Called once during construction after all options are applied.
func (i *I18n) buildLanguagesList() []string {
	set := make(map[string]struct{})
	if len(i.declared) > 0 {
		maps.Copy(set, i.declared)
	} else {
		for lang := range i.dictionaries {
			set[lang] = struct{}{}
		}
	}
	delete(set, i.defaultLang)

	others := make([]string, 0, len(set))
	for lang := range set {
		others = append(others, lang)
	}
	sort.Strings(others)

	return append([]string{i.defaultLang}, others...)
}
