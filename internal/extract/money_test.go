package extract

import "testing"

func TestFirstAmount(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		found    bool
	}{
		{"£12,345.67", 12345.67, true},
		{"£1,000", 1000, true},
		{"£500 a month", 500, true},
		{"received £250.50 on arrival", 250.50, true},
		{"no money here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, found := FirstAmount(tt.text)
			if found != tt.found {
				t.Fatalf("FirstAmount(%q) found = %v, expected %v", tt.text, found, tt.found)
			}
			if got != tt.expected {
				t.Errorf("FirstAmount(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSumAmounts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"single amount", "£12,345.67", 12345.67},
		{"two gifts in one entry", "Tickets worth £350 and hospitality worth £150.50", 500.50},
		{"amount with trailing punctuation", "received £1,000.", 1000},
		{"amount in parentheses", "flights (£2,400) and accommodation (£600)", 3000},
		{"no sigil contributes nothing", "a sum of 500 with no marker", 0},
		{"empty text", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumAmounts(tt.text); got != tt.expected {
				t.Errorf("SumAmounts(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}
