package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/i18n"
)

func newSiteI18n(t *testing.T) *i18n.I18n {
	t.Helper()
	i18nInstance, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en", "fr", "ar"),
		i18n.WithTranslations("en", map[string]any{"locale": map[string]any{"label": "English"}}),
		i18n.WithTranslations("fr", map[string]any{"locale": map[string]any{"label": "Français"}}),
	)
	require.NoError(t, err)
	return i18nInstance
}

func TestResolveLocale(t *testing.T) {
	i18nInstance := newSiteI18n(t)

	tests := []struct {
		name     string
		stored   string
		browser  string
		expected string
	}{
		{name: "stored preference wins", stored: "ar", browser: "fr-FR", expected: "ar"},
		{name: "unsupported stored falls to browser", stored: "de", browser: "fr-CA", expected: "fr"},
		{name: "browser primary subtag", stored: "", browser: "ar-EG", expected: "ar"},
		{name: "browser case insensitive", stored: "", browser: "FR", expected: "fr"},
		{name: "unsupported browser falls to default", stored: "", browser: "zz", expected: "en"},
		{name: "nothing available", stored: "", browser: "", expected: "en"},
		{name: "garbage input", stored: "???", browser: "!!", expected: "en"},
		{name: "stored is case sensitive", stored: "FR", browser: "", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18nInstance.ResolveLocale(tt.stored, tt.browser))
		})
	}

	t.Run("never returns unsupported codes", func(t *testing.T) {
		for _, code := range []string{"de", "es", "pt-BR", "zh-Hant", "x", "en-x-private", strings.Repeat("a", 64)} {
			got := i18nInstance.ResolveLocale(code, code)
			assert.True(t, i18nInstance.Supports(got), "resolved %q for %q", got, code)
			assert.NotEqual(t, code, got)
		}
	})
}

func TestPrimarySubtag(t *testing.T) {
	assert.Equal(t, "fr", i18n.PrimarySubtag("fr-CA"))
	assert.Equal(t, "en", i18n.PrimarySubtag(" en-US "))
	assert.Equal(t, "ar", i18n.PrimarySubtag("ar"))
	assert.Equal(t, "", i18n.PrimarySubtag(""))
	assert.Equal(t, "", i18n.PrimarySubtag("x"))
}

func TestPreferredLanguage(t *testing.T) {
	assert.Equal(t, "fr-FR", i18n.PreferredLanguage("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, "ar", i18n.PreferredLanguage("en;q=0.5,ar"))
	assert.Equal(t, "", i18n.PreferredLanguage(""))
	assert.Equal(t, "", i18n.PreferredLanguage("   "))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, i18n.DirRTL, i18n.Direction("ar"))
	assert.Equal(t, i18n.DirRTL, i18n.Direction("he-IL"))
	assert.Equal(t, i18n.DirLTR, i18n.Direction("en"))
	assert.Equal(t, i18n.DirLTR, i18n.Direction("fr"))
	assert.Equal(t, i18n.DirLTR, i18n.Direction(""))
	assert.True(t, i18n.IsRTL("fa"))
}

func TestLanguageOptions(t *testing.T) {
	i18nInstance := newSiteI18n(t)

	options := i18nInstance.LanguageOptions("fr")
	require.Len(t, options, 3)

	assert.Equal(t, i18n.LanguageOption{Code: "en", Label: "English"}, options[0])
	assert.Equal(t, i18n.LanguageOption{Code: "ar", Label: "AR"}, options[1])
	assert.Equal(t, i18n.LanguageOption{Code: "fr", Label: "Français", Active: true}, options[2])
}
