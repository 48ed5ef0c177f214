package extract

import (
	"testing"

	"github.com/acollard/mp-register/internal/register"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected register.Hours
	}{
		{
			name:     "weekly hours annualized",
			text:     "Hours: 2 hrs a week",
			expected: register.AnnualHours(104),
		},
		{
			name:     "monthly hours annualized",
			text:     "Hours: 10 hours a month",
			expected: register.AnnualHours(120),
		},
		{
			name:     "minutes normalized to hours",
			text:     "Hours: 30 mins a week",
			expected: register.AnnualHours(26),
		},
		{
			name:     "no frequency passes through",
			text:     "Hours: 8 hrs",
			expected: register.AnnualHours(8),
		},
		{
			name:     "yearly frequency multiplies by one",
			text:     "Hours: 40 hours a year",
			expected: register.AnnualHours(40),
		},
		{
			name:     "matching frequencies compute normally",
			text:     "£200 a month. Hours: 5 hrs a month",
			expected: register.AnnualHours(60),
		},
		{
			name:     "mismatched frequencies flagged",
			text:     "£200 a week. Hours: 5 hrs a month",
			expected: register.MismatchHours(),
		},
		{
			name:     "no annotation is distinct from zero hours",
			text:     "received £500 for an article",
			expected: register.NoHours(),
		},
		{
			name:     "capitalised unit still parses",
			text:     "HOURS: 3 Hrs per week",
			expected: register.AnnualHours(156),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHours(tt.text)
			if got.State != tt.expected.State {
				t.Fatalf("ParseHours(%q) state = %q, expected %q", tt.text, got.State, tt.expected.State)
			}
			if got.Annual != tt.expected.Annual {
				t.Errorf("ParseHours(%q) annual = %v, expected %v", tt.text, got.Annual, tt.expected.Annual)
			}
		})
	}
}
