package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/acollard/mp-register/internal/register"
)

// periodMultipliers converts a per-period figure to a full-year equivalent.
var periodMultipliers = map[string]float64{
	"day":     365,
	"week":    52,
	"month":   12,
	"quarter": 4,
	"year":    1,
}

var (
	// "Hours: 2 hrs", "Hours: 30 mins", "Hours: 1.5 hours"
	hoursAnnotationPattern = regexp.MustCompile(`(?i)hours?:\s*(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?)`)

	// "2 hrs a week", "30 mins per month": the frequency stated for the hours
	hoursFrequencyPattern = regexp.MustCompile(`(?i)(?:hours?|hrs?|minutes?|mins?)\s+(?:a|per|each|every)\s+(day|week|month|quarter|year)`)

	// "£200 a week": the frequency stated for the payment itself
	moneyFrequencyPattern = regexp.MustCompile(`(?i)£[\d,]+(?:\.\d{2})?\s+(?:a|per|each|every)\s+(day|week|month|quarter|year)`)
)

// ParseHours scans a segment for an "Hours: <n> <unit>" annotation and
// normalizes it to an annual hours figure.
//
// Minute units are divided by 60. When the text states a recurring frequency
// for the hours ("2 hrs a week"), the figure is multiplied by the fixed
// period-to-annual table. When the text also states a payment frequency
// ("£200 a week") whose period disagrees with the hours' period, the source
// document is internally inconsistent and a mismatch marker is returned so
// aggregation can flag the entry instead of summing a wrong number.
func ParseHours(text string) register.Hours {
	m := hoursAnnotationPattern.FindStringSubmatch(text)
	if m == nil {
		return register.NoHours()
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return register.NoHours()
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "min") {
		n /= 60
	}

	hoursPeriod := ""
	if fm := hoursFrequencyPattern.FindStringSubmatch(text); fm != nil {
		hoursPeriod = strings.ToLower(fm[1])
	}

	moneyPeriod := ""
	if fm := moneyFrequencyPattern.FindStringSubmatch(text); fm != nil {
		moneyPeriod = strings.ToLower(fm[1])
	}

	if hoursPeriod != "" && moneyPeriod != "" && hoursPeriod != moneyPeriod {
		return register.MismatchHours()
	}

	if hoursPeriod != "" {
		n *= periodMultipliers[hoursPeriod]
	}

	return register.AnnualHours(n)
}
