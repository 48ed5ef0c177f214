package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/acollard/mp-register/internal/register"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// MemberSummary is one member's line in a report.
type MemberSummary struct {
	Name         string  `json:"name"`
	Party        string  `json:"party"`
	Constituency string  `json:"constituency"`
	Records      int     `json:"records"`
	TotalValue   float64 `json:"total_value"`
	TotalHours   float64 `json:"total_hours"`
	Mismatches   int     `json:"mismatches"`

	donations []*register.Donation
}

// ReportResult contains data to be output
type ReportResult struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Members     []MemberSummary `json:"members"`
	MemberCount int             `json:"member_count"`
	GrandTotal  float64         `json:"grand_total"`
}

// BuildReport summarizes members into a report, ordered by total value
// descending with name as tiebreak.
func BuildReport(members []*register.Member) *ReportResult {
	result := &ReportResult{
		GeneratedAt: time.Now().UTC(),
		MemberCount: len(members),
	}

	for _, m := range members {
		s := MemberSummary{
			Name:         m.Name,
			Party:        m.Party,
			Constituency: m.Constituency,
			Records:      len(m.Donations),
			TotalValue:   m.TotalValue(),
			TotalHours:   m.TotalHours(),
			donations:    m.Donations,
		}
		for _, d := range m.Donations {
			if d.Hours.State == register.HoursMismatch {
				s.Mismatches++
			}
		}
		result.GrandTotal += s.TotalValue
		result.Members = append(result.Members, s)
	}

	sort.SliceStable(result.Members, func(i, j int) bool {
		if result.Members[i].TotalValue != result.Members[j].TotalValue {
			return result.Members[i].TotalValue > result.Members[j].TotalValue
		}
		return result.Members[i].Name < result.Members[j].Name
	})

	return result
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *ReportResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *ReportResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *ReportResult, verbose bool) error {
	if result.MemberCount == 0 {
		fmt.Fprintln(w, "No members in snapshot.")
		return nil
	}

	for _, s := range result.Members {
		fmt.Fprintf(w, "%s(%s, %s): £%.2f across %d records\n",
			s.Name, s.Party, s.Constituency, s.TotalValue, s.Records)
		if s.TotalHours > 0 {
			fmt.Fprintf(w, "     Hours: %.1f/year\n", s.TotalHours)
		}
		if s.Mismatches > 0 {
			fmt.Fprintf(w, "     Warning: %d entries with mismatched frequencies\n", s.Mismatches)
		}
		if verbose {
			for _, d := range s.donations {
				fmt.Fprintf(w, "     £%.2f  %s  %s\n", d.Amount, d.InterestType, d.DateText)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: £%.2f across %d members\n", result.GrandTotal, result.MemberCount)
	return nil
}
