package i18n

// PluralRule picks the CLDR cardinal category for a count.
type PluralRule func(n int) string

// Plural categories as named by Unicode CLDR. A language uses a subset.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

var pluralOrder = []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}

// EnglishPluralRule: one (1), other.
var EnglishPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchPluralRule: one (0, 1), many (non-zero multiples of a million), other.
var FrenchPluralRule PluralRule = func(n int) string {
	n = abs(n)
	switch {
	case n <= 1:
		return PluralOne
	case n%1_000_000 == 0:
		return PluralMany
	default:
		return PluralOther
	}
}

// ArabicPluralRule uses all six categories.
var ArabicPluralRule PluralRule = func(n int) string {
	n = abs(n)
	switch mod100 := n % 100; {
	case n == 0:
		return PluralZero
	case n == 1:
		return PluralOne
	case n == 2:
		return PluralTwo
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}

// PluralRuleFor returns the rule for a language tag, English for anything
// the site does not ship.
func PluralRuleFor(lang string) PluralRule {
	switch PrimarySubtag(lang) {
	case "fr":
		return FrenchPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return EnglishPluralRule
	}
}

// PluralForms lists the categories a rule produces, in CLDR order. Locale
// files are expected to define each of them for every counted key.
func PluralForms(rule PluralRule) []string {
	seen := make(map[string]bool)
	for _, n := range []int{0, 1, 2, 3, 5, 11, 21, 100, 102, 1_000_000} {
		seen[rule(n)] = true
	}

	forms := make([]string, 0, len(seen))
	for _, form := range pluralOrder {
		if seen[form] {
			forms = append(forms, form)
		}
	}
	return forms
}

// pluralFallback is the order of forms tried when a category is missing.
func pluralFallback(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralTwo, PluralFew, PluralOther}
	case PluralFew:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralOther:
		return []string{PluralOther}
	default:
		return []string{form, PluralOther}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
