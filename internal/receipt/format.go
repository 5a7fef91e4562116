package receipt

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormattingPolicy captures how amounts are rendered: the locale and
// the fraction digit bounds. It is resolved once, upstream of the
// renderer, instead of re-deriving locale handling at every call site.
type FormattingPolicy struct {
	// Locale is the original BCP 47 tag requested by the caller.
	Locale string

	MinFractionDigits int
	MaxFractionDigits int

	tag       language.Tag
	localized bool
}

// NewFormattingPolicy builds a policy for the given locale. Two
// fraction digits when useDecimals is set, zero otherwise. An
// unparseable locale degrades to fixed-point formatting with the same
// digit count; the renderer never sees the failure.
func NewFormattingPolicy(locale string, useDecimals bool) FormattingPolicy {
	digits := 0
	if useDecimals {
		digits = 2
	}
	p := FormattingPolicy{
		Locale:            locale,
		MinFractionDigits: digits,
		MaxFractionDigits: digits,
	}
	if tag, err := language.Parse(locale); err == nil {
		p.tag = tag
		p.localized = true
	}
	return p
}

// Format renders an amount under the policy.
func (p FormattingPolicy) Format(v float64) string {
	if p.localized {
		return message.NewPrinter(p.tag).Sprint(number.Decimal(v,
			number.MinFractionDigits(p.MinFractionDigits),
			number.MaxFractionDigits(p.MaxFractionDigits),
		))
	}
	return strconv.FormatFloat(v, 'f', p.MaxFractionDigits, 64)
}
