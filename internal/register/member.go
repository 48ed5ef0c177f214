package register

// UnknownLabel is the placeholder party/constituency for members that match
// no roster entry. Such members are still tracked, never dropped.
const UnknownLabel = "Unknown"

// Member represents one Member of Parliament together with the donations
// extracted from their register-of-interests page. The donation list is
// append-only during an extraction pass; document order is preserved.
type Member struct {
	Name         string      `json:"name"`
	Constituency string      `json:"constituency"`
	Party        string      `json:"party"`
	SourceURL    string      `json:"source_url,omitempty"`
	Donations    []*Donation `json:"donations"`
}

// NewMember creates a Member with placeholder party and constituency.
func NewMember(name string) *Member {
	return &Member{
		Name:         name,
		Constituency: UnknownLabel,
		Party:        UnknownLabel,
		Donations:    make([]*Donation, 0),
	}
}

// AddDonation appends one donation record. Existing records are never mutated.
func (m *Member) AddDonation(d *Donation) {
	m.Donations = append(m.Donations, d)
}

// ClearDonations empties the donation list ahead of a full re-extraction pass.
func (m *Member) ClearDonations() {
	m.Donations = m.Donations[:0]
}

// TotalValue sums the amount over all donations. Amounts are assumed to be in
// one consistent currency unit (GBP).
func (m *Member) TotalValue() float64 {
	var total float64
	for _, d := range m.Donations {
		total += d.Amount
	}
	return total
}

// TotalHours sums the annualized hours over donations that carry a genuine
// figure. Entries with no annotation or a frequency mismatch are skipped.
func (m *Member) TotalHours() float64 {
	var total float64
	for _, d := range m.Donations {
		if d.Hours.State == HoursKnown {
			total += d.Hours.Annual
		}
	}
	return total
}

// NormalizeParty folds party label synonyms onto their canonical form so that
// per-party aggregation groups them together.
func NormalizeParty(party string) string {
	if party == "Labour/Co-operative" {
		return "Labour"
	}
	return party
}
