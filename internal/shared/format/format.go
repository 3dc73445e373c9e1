// Package format renders money, dates, and percentages for display and export.
// All functions are pure; unparseable input degrades to an empty string
// rather than an error.
package format

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when no ISO code is given.
const DefaultCurrency = "INR"

// indianEnglish drives currency rendering: grouping follows the Indian
// numbering system (3,50,000.00) per CLDR.
var indianEnglish = language.MustParse("en-IN")

// FormatCurrency renders an amount as a localized currency string, e.g.
// "₹3,500.00". Negative amounts carry a leading minus sign; zero renders
// as the symbol plus "0.00". An unrecognized ISO code falls back to the
// code itself as the prefix.
func FormatCurrency(amount float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}

	p := message.NewPrinter(indianEnglish)

	negative := amount < 0
	if negative {
		amount = -amount
	}

	prefix := code + " "
	if unit, err := currency.ParseISO(code); err == nil {
		prefix = p.Sprint(currency.Symbol(unit))
	}

	s := prefix + p.Sprint(number.Decimal(amount, number.Scale(2)))
	if negative {
		s = "-" + s
	}
	return s
}

// FormatShortDate renders a date as "Jan 2, 2006".
func FormatShortDate(v any) string {
	t, ok := parseTime(v)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FormatLongDate renders a date as
// "Monday, January 2, 2006 at 03:04 PM".
func FormatLongDate(v any) string {
	t, ok := parseTime(v)
	if !ok {
		return ""
	}
	return t.Format("Monday, January 2, 2006 at 03:04 PM")
}

// FormatPercentage renders a value as "NN.N%" with the given number of
// fraction digits. Negative digits fall back to one.
func FormatPercentage(value float64, digits int) string {
	if digits < 0 {
		digits = 1
	}
	return strconv.FormatFloat(value, 'f', digits, 64) + "%"
}

// FormatCSVDate renders a date as "2006-01-02". Used by export only.
func FormatCSVDate(v any) string {
	t, ok := parseTime(v)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// parseTime accepts instants, civil dates, and their common string
// encodings. The bool result is false when the input cannot be understood.
func parseTime(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return parseTime(*d)
	case civil.Date:
		if !d.IsValid() {
			return time.Time{}, false
		}
		return d.In(time.Local), true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
