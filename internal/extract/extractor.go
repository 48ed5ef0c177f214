package extract

import (
	"crypto/sha1"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/acollard/mp-register/internal/register"
)

// headerPattern matches the "<1-2 digits>. " numbering that introduces one of
// the statutory interest categories.
var headerPattern = regexp.MustCompile(`^\d{1,2}\. `)

// annualSynonyms are the phrasings that mark an amount as a flat yearly total
// rather than a recurring payment to be annualized.
var annualSynonyms = []string{"per annum", "per year", "a year", "annual", "yearly"}

// quarterSynonyms switch the periodic divisor from monthly to quarterly.
var quarterSynonyms = []string{"a quarter", "quarterly", "every three months"}

// hoursAnnualRatePattern recognizes "<n> hours <annual-synonym>". An annual
// framing expressed as an hours-per-year rate is still a rate statement, not
// a flat annual total, so it does not exclude the periodic branch.
var hoursAnnualRatePattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:hours?|hrs?)\s+(?:annual|yearly|a year|per annum|per year)`)

// Extractor classifies register page segments and emits donation records.
// It is a pure function of the segment sequence plus its configuration, so
// re-running it over unchanged text produces an identical donation list.
type Extractor struct {
	cfg Config
}

// New creates an Extractor with the given reporting-period configuration.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract consumes segments in document order. Header segments update the
// carried interest-type label and emit nothing; every other segment is
// classified as a stated total, a periodic payment, or an itemized sum, and
// yields a record only when a monetary amount was actually located. The
// interest-type accumulator is local to this call, so documents can be
// processed concurrently.
//
// Segments whose lowered text repeats an earlier segment of the same document
// are skipped; register pages occasionally render the same entry twice.
func (e *Extractor) Extract(segments []string) []*register.Donation {
	donations := make([]*register.Donation, 0)
	interestType := ""
	seen := make(map[string]struct{})

	for _, raw := range segments {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		key := segmentKey(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if headerPattern.MatchString(text) {
			interestType = headerLabel(text)
			continue
		}

		d := e.extractEntry(text)
		if d == nil {
			continue
		}
		d.InterestType = interestType
		donations = append(donations, d)
	}

	return donations
}

// extractEntry classifies one informational segment and returns its record,
// or nil when no amount was found. Classification priority: stated total,
// then periodic payment, then itemized sums. An explicit stated total
// overrides a derivable one even when from/until phrasing is also present.
func (e *Extractor) extractEntry(text string) *register.Donation {
	lower := strings.ToLower(text)

	var amount float64
	var dateText string
	var date time.Time

	switch {
	case isStatedTotal(lower):
		totIdx := strings.Index(lower, "total")
		amount, _ = FirstAmount(lower[totIdx:])
		dateText, date = FirstDate(lower)

	case e.isPeriodic(lower):
		amount = e.annualizePeriodic(text, lower)
		dateText, date = FirstDate(lower)

	default:
		amount = SumAmounts(text)
		dateText, date = FirstDate(lower)
	}

	if amount <= 0 {
		return nil
	}

	return &register.Donation{
		Amount:   amount,
		DateText: dateText,
		Date:     date,
		Hours:    ParseHours(text),
		RawText:  text,
	}
}

// isStatedTotal reports whether the segment states an explicit total: the
// word "total" with a currency sigil somewhere after it.
func isStatedTotal(lower string) bool {
	totIdx := strings.Index(lower, "total")
	return totIdx >= 0 && strings.Contains(lower[totIdx:], Sigil)
}

// isPeriodic reports whether the segment describes a date-ranged recurring
// payment: from/until phrasing with an amount, and no flat annual framing.
func (e *Extractor) isPeriodic(lower string) bool {
	if !strings.Contains(lower, "from") || !strings.Contains(lower, "until") ||
		!strings.Contains(lower, Sigil) {
		return false
	}
	return !hasFlatAnnualFraming(lower)
}

// hasFlatAnnualFraming reports whether the text frames its amount as a flat
// yearly figure. "<n> hours a year" is the documented exception: that is an
// hours rate, not an annual total.
func hasFlatAnnualFraming(lower string) bool {
	for _, syn := range annualSynonyms {
		if strings.Contains(lower, syn) {
			return !hoursAnnualRatePattern.MatchString(lower)
		}
	}
	return false
}

// annualizePeriodic converts a recurring stated amount into its contribution
// over the resolved date range: elapsed days are divided into months (or
// quarters when the text says so) and multiplied by the per-period amount.
// This is the one place the computed amount is rounded to 2 decimal places.
func (e *Extractor) annualizePeriodic(text, lower string) float64 {
	rng, ok := e.cfg.ResolveRange(text)
	if !ok || rng.Degenerate {
		return 0
	}

	base, found := FirstAmount(text)
	if !found {
		return 0
	}

	divisor := e.cfg.DaysPerMonth
	for _, syn := range quarterSynonyms {
		if strings.Contains(lower, syn) {
			divisor = e.cfg.DaysPerQuarter
			break
		}
	}

	return math.Round(base*float64(rng.Days)/divisor*100) / 100
}

// headerLabel derives the interest-type label from a header segment: the text
// before the colon when one is present, otherwise the whole header.
func headerLabel(text string) string {
	if idx := strings.Index(text, ":"); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

// segmentKey produces a deterministic key for duplicate suppression within
// one document, following the lowered text of the segment.
func segmentKey(text string) string {
	h := sha1.New()
	h.Write([]byte(strings.ToLower(text)))
	return fmt.Sprintf("%x", h.Sum(nil))
}
