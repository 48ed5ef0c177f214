// Package roster loads the table of sitting members used to seed member
// identity: one row per member with their declared party and constituency.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acollard/mp-register/internal/register"
)

// Entry is one roster row.
type Entry struct {
	LastName     string
	FirstName    string
	Party        string
	Constituency string
}

// Roster holds the known members in file order.
type Roster struct {
	entries []Entry
}

// Empty returns a roster with no entries. Seeding from it leaves members
// with placeholder identity fields.
func Empty() *Roster {
	return &Roster{}
}

// Load reads a roster CSV of (last name, first name, party, constituency)
// rows. A header row is detected and skipped; short rows are rejected.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads roster rows from r.
func Parse(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	entries := make([]Entry, 0)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading roster: %w", err)
		}
		line++

		if len(record) < 4 {
			return nil, fmt.Errorf("roster row %d: expected 4 fields, got %d", line, len(record))
		}

		// Skip a header row
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "last name") {
			continue
		}

		entries = append(entries, Entry{
			LastName:     strings.TrimSpace(record[0]),
			FirstName:    strings.TrimSpace(record[1]),
			Party:        strings.TrimSpace(record[2]),
			Constituency: strings.TrimSpace(record[3]),
		})
	}

	return &Roster{entries: entries}, nil
}

// Len returns the number of roster entries.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Match finds the roster entry for a scraped display name. A row matches
// when every name fragment appears as a substring of the display name; the
// first matching row wins. Display names are formatted like
// "Abbott, Ms Diane ", so substring matching tolerates honorifics and
// ordering differences.
func (r *Roster) Match(displayName string) (Entry, bool) {
	for _, e := range r.entries {
		if strings.Contains(displayName, e.LastName) && strings.Contains(displayName, e.FirstName) {
			return e, true
		}
	}
	return Entry{}, false
}

// Seed applies roster identity to a member: the matched party and
// constituency, or "Unknown" placeholders when no row matches. The member is
// kept either way.
func (r *Roster) Seed(m *register.Member) {
	entry, ok := r.Match(m.Name)
	if !ok {
		m.Party = register.UnknownLabel
		m.Constituency = register.UnknownLabel
		return
	}
	m.Party = entry.Party
	m.Constituency = entry.Constituency
}
