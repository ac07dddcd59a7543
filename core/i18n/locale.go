package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Text directions for the document root.
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// rtlLanguages lists primary subtags written right-to-left.
var rtlLanguages = map[string]struct{}{
	"ar": {},
	"he": {},
	"fa": {},
	"ur": {},
}

// ResolveLocale picks the active language from a persisted preference and the
// client's reported language. A supported stored preference wins, then the
// primary subtag of the client language, then the default language.
// It never returns an unsupported code.
func (i *I18n) ResolveLocale(stored, browserLanguage string) string {
	if i.Supports(stored) {
		return stored
	}
	if base := PrimarySubtag(browserLanguage); i.Supports(base) {
		return base
	}
	return i.defaultLang
}

// PrimarySubtag returns the lower-case primary language subtag of a BCP 47 tag,
// e.g. "fr-CA" -> "fr". Tags that do not parse are truncated to their first two letters.
func PrimarySubtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	if parsed, err := language.Parse(tag); err == nil {
		if base, conf := parsed.Base(); conf != language.No {
			return base.String()
		}
	}

	if len(tag) < 2 {
		return ""
	}
	return strings.ToLower(tag[:2])
}

// PreferredLanguage returns the highest-quality tag of an Accept-Language header,
// or an empty string when the header is empty or malformed.
func PreferredLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	if strings.TrimSpace(header) == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// IsRTL reports whether lang is written right-to-left.
func IsRTL(lang string) bool {
	_, ok := rtlLanguages[PrimarySubtag(lang)]
	return ok
}

// Direction returns the document direction attribute value for lang.
func Direction(lang string) string {
	if IsRTL(lang) {
		return DirRTL
	}
	return DirLTR
}

// LanguageOption represents a supported language in a language switcher.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
}

// LanguageOptions lists supported languages with their display labels.
// The label comes from the "locale.label" key of each language, else the upper-cased code.
func (i *I18n) LanguageOptions(active string) []LanguageOption {
	options := make([]LanguageOption, 0, len(i.languages))
	for _, code := range i.languages {
		label, ok := Lookup(i.dictionaries[code], "locale.label")
		if !ok || strings.TrimSpace(label) == "" {
			label = strings.ToUpper(code)
		}
		options = append(options, LanguageOption{
			Code:   code,
			Label:  label,
			Active: code == active,
		})
	}
	return options
}
