package i18n

import (
	"strconv"
	"strings"
)

// LocaleFormat holds the number separators of a language.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns English separators changed by opts.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the grouping separator.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

var (
	englishFormat = NewLocaleFormat()
	// French groups with a narrow no-break space.
	frenchFormat = NewLocaleFormat(WithDecimalSeparator(","), WithThousandSeparator("\u202f"))
)

// FormatFor returns the separators for a language tag. Arabic pages use
// Western digits and share the English separators.
func FormatFor(lang string) *LocaleFormat {
	switch PrimarySubtag(lang) {
	case "fr":
		return frenchFormat
	default:
		return englishFormat
	}
}

// FormatInt groups the digits of n in threes.
func (lf *LocaleFormat) FormatInt(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteString(lf.thousandSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatNumber formats f with at most two decimals, trailing zeros dropped.
func (lf *LocaleFormat) FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	n, err := strconv.Atoi(whole)
	if err != nil {
		return s
	}
	out := lf.FormatInt(n)
	if n == 0 && strings.HasPrefix(whole, "-") && frac != "" {
		out = "-" + out
	}
	if frac != "" {
		out += lf.decimalSeparator + frac
	}
	return out
}
