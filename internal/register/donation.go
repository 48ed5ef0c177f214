package register

import "time"

// HoursState describes what the hours field of a donation carries.
type HoursState string

const (
	// HoursNone means no hours annotation was found in the entry text.
	HoursNone HoursState = "none"
	// HoursKnown means a genuine annualized hours figure was computed.
	HoursKnown HoursState = "known"
	// HoursMismatch means the entry stated an hours frequency that disagrees
	// with its payment frequency, so no trustworthy figure exists.
	HoursMismatch HoursState = "mismatch"
)

// Hours is the optional annualized hours-worked figure attached to a donation.
// Absence of an annotation (HoursNone) is distinct from zero hours.
type Hours struct {
	State  HoursState `json:"state"`
	Annual float64    `json:"annual,omitempty"`
}

// NoHours reports that the entry text carried no hours annotation.
func NoHours() Hours {
	return Hours{State: HoursNone}
}

// AnnualHours wraps a computed annual hours figure.
func AnnualHours(annual float64) Hours {
	return Hours{State: HoursKnown, Annual: annual}
}

// MismatchHours marks an entry whose hours and payment frequencies disagree.
func MismatchHours() Hours {
	return Hours{State: HoursMismatch}
}

// Donation is one extracted register entry. It is immutable once appended to
// a member's donation list.
type Donation struct {
	Amount       float64   `json:"amount"`
	InterestType string    `json:"interest_type,omitempty"`
	DateText     string    `json:"date_text,omitempty"`
	Date         time.Time `json:"date,omitempty"`
	Hours        Hours     `json:"hours"`
	RawText      string    `json:"raw_text"`
}
