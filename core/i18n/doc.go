// Package i18n resolves localized display strings and the active locale.
//
// Dictionaries are nested records loaded once at startup (usually from embedded
// JSON files) and never mutated, so an *I18n is safe for concurrent use.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/portfolio/core/i18n"
//
//	translations, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", map[string]any{
//			"nav": map[string]any{"home": "Home", "contact": "Contact"},
//		}),
//		i18n.WithTranslations("fr", map[string]any{
//			"nav": map[string]any{"home": "Accueil"},
//		}),
//	)
//
//	translations.T("fr", "nav.home")             // "Accueil"
//	translations.T("fr", "nav.contact")          // "Contact" (default language)
//	translations.T("fr", "nav.blog", "Blog")     // "Blog" (caller fallback)
//	translations.T("fr", "nav.blog")             // "nav.blog" (the key itself)
//
// # Resolution Rules
//
// Keys are split on "." and walked segment by segment. The walk fails closed:
// a missing segment, an intermediate value that is not a record, or a leaf that is
// neither a string nor a number is treated as "not found". Lookups fall back from
// the requested language to the default language, then to the caller's fallback
// text, then to the key itself. T never returns an empty result for a missing key
// and never panics.
//
// # Locale Selection
//
// ResolveLocale picks the active language from a stored preference and the
// client's language tag:
//
//	lang := translations.ResolveLocale(cookieValue, i18n.PreferredLanguage(r.Header.Get("Accept-Language")))
//	dir := i18n.Direction(lang) // "rtl" for Arabic, "ltr" otherwise
//
// # Loading From Files
//
//	//go:embed locales/*.json
//	var locales embed.FS
//
//	translations := i18n.MustNew(i18n.WithTranslationsFS(locales, "locales/*.json"))
package i18n
