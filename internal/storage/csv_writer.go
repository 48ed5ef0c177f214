package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/acollard/mp-register/internal/register"
)

// CSVWriter exports donation rows to a CSV file, one row per donation.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"member", "party", "constituency", "amount", "interest_type",
		"date", "hours_state", "annual_hours", "raw_text",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per donation for every member.
func (c *CSVWriter) Write(members []*register.Member) error {
	for _, m := range members {
		for _, d := range m.Donations {
			date := ""
			if !d.Date.IsZero() {
				date = d.Date.Format(time.DateOnly)
			}

			hours := ""
			if d.Hours.State == register.HoursKnown {
				hours = strconv.FormatFloat(d.Hours.Annual, 'f', -1, 64)
			}

			row := []string{
				m.Name,
				m.Party,
				m.Constituency,
				strconv.FormatFloat(d.Amount, 'f', 2, 64),
				d.InterestType,
				date,
				string(d.Hours.State),
				hours,
				d.RawText,
			}
			if err := c.writer.Write(row); err != nil {
				return fmt.Errorf("csv: write row: %w", err)
			}
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
