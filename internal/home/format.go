package home

import (
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders whole currency units with thousands separators,
// e.g. "₱17,800".
func FormatAmount(symbol string, amount int64) string {
	digits := humanize.Comma(amount)
	if rest, neg := strings.CutPrefix(digits, "-"); neg {
		return "-" + symbol + rest
	}
	return symbol + digits
}

// Initial is the first letter of a category, used as its icon.
func Initial(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(category)
	return strings.ToUpper(string(r))
}
