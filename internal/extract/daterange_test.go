package extract

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		PeriodStart:    time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
		DaysPerMonth:   30.4,
		DaysPerQuarter: 91.3,
	}
}

func TestResolveRange(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		text       string
		wantStart  time.Time
		wantEnd    time.Time
		wantDays   int
		degenerate bool
		ok         bool
	}{
		{
			name:      "start clamped to period floor",
			text:      "From 1 April 2021 until 30 June 2021, £500 a month",
			wantStart: time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2021, time.June, 30, 0, 0, 0, 0, time.UTC),
			wantDays:  60,
			ok:        true,
		},
		{
			name:      "start inside period kept as written",
			text:      "From 1 June 2021 until 1 September 2021, £250 a month",
			wantStart: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  92,
			ok:        true,
		},
		{
			name:      "missing end date falls back to period end",
			text:      "From 1 June 2021 until further notice, £500 a month",
			wantStart: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  334,
			ok:        true,
		},
		{
			name: "dates after the sigil are not mistaken for the end",
			text: "From 1 June 2021 until further notice, £500 a month. Registered 12 July 2021",
			// the 12 July 2021 date sits after the sigil, so the fallback
			// end still applies
			wantStart: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  334,
			ok:        true,
		},
		{
			name: "amount before the dates forces the fallback end",
			text: "Paid £500 a month from 1 June 2021 until 23 August 2021",
			// the sigil precedes the start date, leaving no window to
			// search for an end date in
			wantStart: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  334,
			ok:        true,
		},
		{
			name:       "clamped start after end is degenerate",
			text:       "From 1 March 2021 until 15 April 2021, £500 a month",
			degenerate: true,
			ok:         true,
		},
		{
			name: "no start date is a parse miss",
			text: "From some unstated date until further notice, £500 a month",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, ok := cfg.ResolveRange(tt.text)
			if ok != tt.ok {
				t.Fatalf("ResolveRange(%q) ok = %v, expected %v", tt.text, ok, tt.ok)
			}
			if !ok {
				return
			}
			if rng.Degenerate != tt.degenerate {
				t.Fatalf("ResolveRange(%q) degenerate = %v, expected %v", tt.text, rng.Degenerate, tt.degenerate)
			}
			if tt.degenerate {
				return
			}
			if !rng.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, expected %v", rng.Start, tt.wantStart)
			}
			if !rng.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, expected %v", rng.End, tt.wantEnd)
			}
			if rng.Days != tt.wantDays {
				t.Errorf("days = %d, expected %d", rng.Days, tt.wantDays)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		text     string
		expected time.Time
	}{
		{"5 June 2022", time.Date(2022, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{"5 june 2022", time.Date(2022, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{"01 May 2021", time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{"12 Sep 2021", time.Date(2021, time.September, 12, 0, 0, 0, 0, time.UTC)},
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseDate(tt.text)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFirstDate(t *testing.T) {
	text, parsed := FirstDate("total interest: £1,000 received 5 june 2022")
	if text != "5 june 2022" {
		t.Errorf("FirstDate matched %q, expected %q", text, "5 june 2022")
	}
	want := time.Date(2022, time.June, 5, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("FirstDate parsed %v, expected %v", parsed, want)
	}

	text, parsed = FirstDate("no date in this entry")
	if text != "" || !parsed.IsZero() {
		t.Errorf("expected no date, got %q / %v", text, parsed)
	}
}
