package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Sigil is the currency marker register entries use for monetary amounts.
const Sigil = "£"

// amountPattern matches the sigil immediately followed by digits, optionally
// thousands-grouped, optionally with two decimal places.
var amountPattern = regexp.MustCompile(`£\d+(?:,\d{3})*(?:\.\d{2})?`)

// parseAmount converts a single matched token like "£12,345.67" to 12345.67.
func parseAmount(match string) (float64, bool) {
	digits := strings.ReplaceAll(strings.TrimPrefix(match, Sigil), ",", "")
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// SumAmounts splits a fragment on whitespace and sums the amount found in each
// word. A paragraph listing several discrete sums (multiple gifts in one
// entry) therefore contributes all of them. Returns 0 when nothing matches.
func SumAmounts(text string) float64 {
	var total float64
	for _, word := range strings.Fields(text) {
		m := amountPattern.FindString(word)
		if m == "" {
			continue
		}
		if v, ok := parseAmount(m); ok {
			total += v
		}
	}
	return total
}

// FirstAmount returns the first amount found anywhere in the fragment.
// The second return value is false when no amount pattern is present.
func FirstAmount(text string) (float64, bool) {
	m := amountPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	return parseAmount(m)
}
