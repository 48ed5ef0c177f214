package extract

import (
	"reflect"
	"testing"

	"github.com/acollard/mp-register/internal/register"
)

func TestExtractNoSigilNoRecord(t *testing.T) {
	e := New(testConfig())

	segments := []string{
		"Name of donor: ACME Ltd",
		"Address of donor: 1 High Street, London",
		"Date received: 14 June 2021",
	}

	if got := e.Extract(segments); len(got) != 0 {
		t.Errorf("expected no records for segments without a currency sigil, got %d", len(got))
	}
}

func TestExtractHeaderCarriesInterestType(t *testing.T) {
	e := New(testConfig())

	segments := []string{
		"1. Employment and earnings",
		"Payment of £1,500 for an article. Hours: 4 hrs",
		"2. (a): Support linked to an MP but received by a local party",
		"Tickets worth £350",
	}

	got := e.Extract(segments)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	if got[0].InterestType != "1. Employment and earnings" {
		t.Errorf("first record interest type = %q", got[0].InterestType)
	}
	if got[0].Amount != 1500 {
		t.Errorf("first record amount = %v, expected 1500", got[0].Amount)
	}

	// the second header has a colon, so the label is the pre-colon text
	if got[1].InterestType != "2. (a)" {
		t.Errorf("second record interest type = %q, expected %q", got[1].InterestType, "2. (a)")
	}
	if got[1].Amount != 350 {
		t.Errorf("second record amount = %v, expected 350", got[1].Amount)
	}
}

func TestExtractStatedTotal(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{"total interest: £1,000 received 5 June 2022"})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	if got[0].Amount != 1000 {
		t.Errorf("amount = %v, expected 1000", got[0].Amount)
	}
	if got[0].DateText != "5 june 2022" {
		t.Errorf("date text = %q, expected %q", got[0].DateText, "5 june 2022")
	}
}

func TestExtractStatedTotalOverridesPeriodic(t *testing.T) {
	e := New(testConfig())

	// from/until phrasing is present but the explicit total wins
	got := e.Extract([]string{
		"From 1 June 2021 until 1 December 2021, £500 a month; total received £3,000",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Amount != 3000 {
		t.Errorf("amount = %v, expected the stated total 3000", got[0].Amount)
	}
}

func TestExtractPeriodicPayment(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{"From 1 April 2021 until 30 June 2021, £500 a month"})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	// clamped to 1 May 2021, 60 elapsed days, monthly divisor 30.4
	if got[0].Amount != 986.84 {
		t.Errorf("amount = %v, expected 986.84", got[0].Amount)
	}
}

func TestExtractQuarterlyPayment(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{"From 1 May 2021 until 1 November 2021, £900 a quarter"})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	// 184 elapsed days, quarterly divisor 91.3
	if got[0].Amount != 1813.8 {
		t.Errorf("amount = %v, expected 1813.8", got[0].Amount)
	}
}

func TestExtractAnnualFramingSkipsPeriodicBranch(t *testing.T) {
	e := New(testConfig())

	// a flat yearly figure must not be annualized again; the fallback
	// branch sums the stated amount as-is
	got := e.Extract([]string{"From 1 June 2021 until further notice, £12,000 per annum"})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Amount != 12000 {
		t.Errorf("amount = %v, expected the flat 12000", got[0].Amount)
	}
}

func TestExtractHoursPerYearRateStaysPeriodic(t *testing.T) {
	e := New(testConfig())

	// "10 hours a year" is an hours rate, not an annual total, so the
	// periodic branch still fires despite the annual synonym
	got := e.Extract([]string{
		"From 1 May 2021 until 1 May 2022, £500 a month for 10 hours a year",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	// 365 elapsed days at £500/30.4 days
	if got[0].Amount != 6003.29 {
		t.Errorf("amount = %v, expected 6003.29", got[0].Amount)
	}
}

func TestExtractDegenerateRangeYieldsNoRecord(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{"From 1 March 2021 until 15 April 2021, £500 a month"})
	if len(got) != 0 {
		t.Errorf("expected no record for a degenerate range, got %d", len(got))
	}
}

func TestExtractItemizedFallback(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{
		"Two tickets worth £350 and hospitality worth £150, received 12 September 2021",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Amount != 500 {
		t.Errorf("amount = %v, expected 500", got[0].Amount)
	}
	if got[0].DateText != "12 september 2021" {
		t.Errorf("date text = %q, expected %q", got[0].DateText, "12 september 2021")
	}
}

func TestExtractFrequencyMismatchSentinel(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{"Received £200 a week for advisory work. Hours: 5 hrs a month"})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Hours.State != register.HoursMismatch {
		t.Errorf("hours state = %q, expected %q", got[0].Hours.State, register.HoursMismatch)
	}
}

func TestExtractDuplicateSegmentsSkipped(t *testing.T) {
	e := New(testConfig())

	got := e.Extract([]string{
		"Tickets worth £350",
		"Tickets worth £350",
		"tickets worth £350",
	})
	if len(got) != 1 {
		t.Errorf("expected repeated segments to be suppressed, got %d records", len(got))
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := New(testConfig())

	segments := []string{
		"1. Employment and earnings",
		"Payment of £1,500 for an article. Hours: 4 hrs",
		"From 1 April 2021 until 30 June 2021, £500 a month",
		"total interest: £1,000 received 5 June 2022",
	}

	first := e.Extract(segments)
	second := e.Extract(segments)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical donation lists from repeated extraction")
	}
}
