// Package format renders localized display strings for series values.
// Pure functions; part of the output contract rather than the pipeline.
package format

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var localeTags = map[string]language.Tag{
	"en": language.English,
	"th": language.Thai,
}

// Currency renders a locale-aware currency string for the given ISO code
// (THB or USD in practice). Unknown locales fall back to English; unknown
// codes to USD.
func Currency(value float64, code, locale string) string {
	tag, ok := localeTags[locale]
	if !ok {
		tag = language.English
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(value)))
}

// Change renders a price change as "+X.XX (+Y.YY%)". The sign is always
// shown for non-negative values; zero is treated as non-negative.
func Change(diff, pct float64) string {
	return fmt.Sprintf("%+.2f (%+.2f%%)", diff, pct)
}

// ChangeBetween computes the absolute and percent change from prev to cur.
// A zero previous value yields a zero percent change rather than dividing
// by zero.
func ChangeBetween(prev, cur float64) (diff, pct float64) {
	diff = cur - prev
	if prev != 0 {
		pct = diff / prev * 100
	}
	return diff, pct
}
