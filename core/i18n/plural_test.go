package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/portfolio/core/i18n"
)

func TestPluralRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule i18n.PluralRule
		want map[int]string
	}{
		{
			name: "english",
			rule: i18n.EnglishPluralRule,
			want: map[int]string{0: "other", 1: "one", -1: "one", 2: "other", 21: "other"},
		},
		{
			name: "french",
			rule: i18n.FrenchPluralRule,
			want: map[int]string{0: "one", 1: "one", 2: "other", 1_000: "other", 1_000_000: "many", 2_000_000: "many"},
		},
		{
			name: "arabic",
			rule: i18n.ArabicPluralRule,
			want: map[int]string{
				0: "zero", 1: "one", 2: "two", 3: "few", 10: "few", 11: "many", 99: "many",
				100: "other", 102: "other", 103: "few", 111: "many", -3: "few",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n, want := range tt.want {
				assert.Equal(t, want, tt.rule(n), "n=%d", n)
			}
		})
	}
}

func TestPluralRulesMatchCLDR(t *testing.T) {
	t.Parallel()

	forms := map[plural.Form]string{
		plural.Zero:  i18n.PluralZero,
		plural.One:   i18n.PluralOne,
		plural.Two:   i18n.PluralTwo,
		plural.Few:   i18n.PluralFew,
		plural.Many:  i18n.PluralMany,
		plural.Other: i18n.PluralOther,
	}

	for _, lang := range []language.Tag{language.English, language.French, language.Arabic} {
		rule := i18n.PluralRuleFor(lang.String())
		for n := range 250 {
			want := forms[plural.Cardinal.MatchPlural(lang, n, 0, 0, 0, 0)]
			assert.Equal(t, want, rule(n), "%s n=%d", lang, n)
		}
	}
}

func TestPluralRuleFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"one", "other"}, i18n.PluralForms(i18n.PluralRuleFor("en-US")))
	assert.Equal(t, []string{"one", "many", "other"}, i18n.PluralForms(i18n.PluralRuleFor("fr")))
	assert.Equal(t, []string{"zero", "one", "two", "few", "many", "other"}, i18n.PluralForms(i18n.PluralRuleFor("ar")))
	assert.Equal(t, []string{"one", "other"}, i18n.PluralForms(i18n.PluralRuleFor("xx")))
}

func TestLocaleFormat(t *testing.T) {
	t.Parallel()

	en := i18n.FormatFor("en")
	assert.Equal(t, "0", en.FormatInt(0))
	assert.Equal(t, "999", en.FormatInt(999))
	assert.Equal(t, "1,000", en.FormatInt(1000))
	assert.Equal(t, "-1,234,567", en.FormatInt(-1234567))
	assert.Equal(t, "1,234.5", en.FormatNumber(1234.5))
	assert.Equal(t, "2", en.FormatNumber(2.001))
	assert.Equal(t, "-0.25", en.FormatNumber(-0.25))

	fr := i18n.FormatFor("fr-CA")
	assert.Equal(t, "12\u202f345", fr.FormatInt(12345))
	assert.Equal(t, "12\u202f345,75", fr.FormatNumber(12345.75))

	custom := i18n.NewLocaleFormat(i18n.WithThousandSeparator("'"), i18n.WithDecimalSeparator("."))
	assert.Equal(t, "1'000'000", custom.FormatInt(1_000_000))
}
