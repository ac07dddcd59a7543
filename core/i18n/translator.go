package i18n

// Translator provides a simplified translation interface with a fixed language context.
// It wraps an I18n instance and eliminates the need to specify the language for each lookup.
type Translator struct {
	i18n     *I18n
	language string
}

// NewTranslator creates a new Translator for the given language.
// Unsupported or empty languages fall back to the default language.
func NewTranslator(i18n *I18n, language string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if !i18n.Supports(language) {
		language = i18n.DefaultLanguage()
	}
	return &Translator{
		i18n:     i18n,
		language: language,
	}
}

// T translates a key using the translator's language context.
func (t *Translator) T(key string, fallback ...string) string {
	return t.i18n.T(t.language, key, fallback...)
}

// Tp translates a key and replaces %{name} placeholders.
func (t *Translator) Tp(key string, placeholders M, fallback ...string) string {
	return t.i18n.Tp(t.language, key, placeholders, fallback...)
}

// Tn returns the plural form of key for n.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, key, n, placeholders...)
}

// Number formats n with the language's digit grouping.
func (t *Translator) Number(n int) string {
	return FormatFor(t.language).FormatInt(n)
}

// Language returns the current language context of the translator.
func (t *Translator) Language() string {
	return t.language
}

// Direction returns "rtl" or "ltr" for the translator's language.
func (t *Translator) Direction() string {
	return Direction(t.language)
}
