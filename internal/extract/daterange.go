package extract

import (
	"strings"
	"time"
)

// Config carries the reporting-period bounds and annualization divisors.
// These are empirically tied to one reporting year and change when a new
// register year is scraped, so they are configuration rather than constants.
type Config struct {
	// PeriodStart is the floor every declared start date is clamped to.
	PeriodStart time.Time
	// PeriodEnd is the fallback end date when an entry states no end.
	PeriodEnd time.Time
	// DaysPerMonth divides elapsed days into months for monthly payments.
	DaysPerMonth float64
	// DaysPerQuarter divides elapsed days into quarters for quarterly payments.
	DaysPerQuarter float64
}

// DefaultConfig targets the May 2021 – May 2022 parliamentary reporting year.
func DefaultConfig() Config {
	return Config{
		PeriodStart:    time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
		DaysPerMonth:   30.4,
		DaysPerQuarter: 91.3,
	}
}

// DateRange is the resolved span of a periodic payment.
type DateRange struct {
	Start time.Time
	End   time.Time
	// Days is the elapsed duration in whole days between Start and End.
	Days int
	// Degenerate marks a clamped start that falls after the end date. The
	// range contributes nothing but is not an error.
	Degenerate bool
}

// ResolveRange extracts a "from X until Y" span from segment text.
//
// The start date is the first date pattern at or after the word "from",
// clamped to not precede the reporting-period start. The end date is searched
// only in the text after the start date and before the first currency sigil
// of the whole segment; when the amount precedes the start date that window
// is empty, and the end falls back to the reporting-period end, as it does
// whenever no end date is found. Returns ok=false when no start date can be
// located at all (a parse-miss, absorbed by the caller).
func (c Config) ResolveRange(text string) (DateRange, bool) {
	lower := strings.ToLower(text)

	searchFrom := 0
	if idx := strings.Index(lower, "from"); idx >= 0 {
		searchFrom = idx
	}

	loc := datePattern.FindStringIndex(text[searchFrom:])
	if loc == nil {
		return DateRange{}, false
	}
	start := ParseDate(text[searchFrom+loc[0] : searchFrom+loc[1]])
	if start.IsZero() {
		return DateRange{}, false
	}

	end := c.PeriodEnd
	afterStart := searchFrom + loc[1]
	endRegion := text[afterStart:]
	if sig := strings.Index(text, Sigil); sig >= 0 {
		if sig <= afterStart {
			endRegion = ""
		} else {
			endRegion = text[afterStart:sig]
		}
	}
	if m := datePattern.FindString(endRegion); m != "" {
		if parsed := ParseDate(m); !parsed.IsZero() {
			end = parsed
		}
	}

	// Donations backdated before the reporting period are truncated at the
	// period boundary.
	if start.Before(c.PeriodStart) {
		start = c.PeriodStart
	}

	if start.After(end) {
		return DateRange{Degenerate: true}, true
	}

	return DateRange{
		Start: start,
		End:   end,
		Days:  int(end.Sub(start).Hours() / 24),
	}, true
}
