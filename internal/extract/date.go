package extract

import (
	"regexp"
	"time"
)

// datePattern matches dates written the way the register writes them,
// e.g. "5 June 2022" or "01 May 2021".
var datePattern = regexp.MustCompile(`\d{1,2} [A-Za-z]{3,9} \d{4}`)

// ParseDate attempts to parse a register date string into a time.Time.
// Returns time.Time{} (zero value) if parsing fails. Month names are matched
// case-insensitively, so text lowered for scanning still parses.
func ParseDate(dateText string) time.Time {
	if dateText == "" {
		return time.Time{}
	}

	// Try "5 June 2022" format
	t, err := time.Parse("2 January 2006", dateText)
	if err == nil {
		return t
	}

	// Try "5 Jun 2022" format (abbreviated month)
	t, err = time.Parse("2 Jan 2006", dateText)
	if err == nil {
		return t
	}

	return time.Time{}
}

// FirstDate returns the first date pattern found in the text, as matched text
// plus its best-effort parse. An empty string means no date was found; the
// record is still kept, with the date left unknown.
func FirstDate(text string) (string, time.Time) {
	m := datePattern.FindString(text)
	if m == "" {
		return "", time.Time{}
	}
	return m, ParseDate(m)
}
