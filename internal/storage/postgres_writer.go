package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/acollard/mp-register/internal/register"
)

// PostgresWriter persists extracted donations to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migration,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS donations (
			id            SERIAL PRIMARY KEY,
			member        TEXT          NOT NULL,
			party         TEXT          NOT NULL DEFAULT '',
			constituency  TEXT          NOT NULL DEFAULT '',
			amount        NUMERIC(12,2) NOT NULL DEFAULT 0,
			interest_type TEXT          NOT NULL DEFAULT '',
			date_received DATE,
			hours_state   VARCHAR(10)   NOT NULL DEFAULT 'none',
			annual_hours  NUMERIC(8,2),
			raw_text      TEXT          NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_donations_member ON donations(member);
		CREATE INDEX IF NOT EXISTS idx_donations_party  ON donations(party);
		CREATE INDEX IF NOT EXISTS idx_donations_amount ON donations(amount);
	`)
	return err
}

// Clear deletes all existing donation rows.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM donations")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write appends the given members' records to the donations table. Callers
// that want replace semantics call Clear first.
func (pw *PostgresWriter) Write(members []*register.Member) error {
	rows := donationRows(members)

	const batchSize = 50
	for len(rows) > 0 {
		n := batchSize
		if len(rows) < n {
			n = len(rows)
		}
		if err := pw.insertBatch(rows[:n]); err != nil {
			return err
		}
		rows = rows[n:]
	}

	return nil
}

// donationRows flattens members into insert rows, preserving member and
// donation order.
func donationRows(members []*register.Member) []donationRow {
	var rows []donationRow
	for _, m := range members {
		for _, d := range m.Donations {
			rows = append(rows, donationRow{member: m, donation: d})
		}
	}
	return rows
}

type donationRow struct {
	member   *register.Member
	donation *register.Donation
}

func (pw *PostgresWriter) insertBatch(batch []donationRow) error {
	const fields = 9
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*fields)

	for idx, row := range batch {
		base := idx * fields
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))

		var date sql.NullTime
		if !row.donation.Date.IsZero() {
			date = sql.NullTime{Time: row.donation.Date, Valid: true}
		}

		var hours sql.NullFloat64
		if row.donation.Hours.State == register.HoursKnown {
			hours = sql.NullFloat64{Float64: row.donation.Hours.Annual, Valid: true}
		}

		valueArgs = append(valueArgs,
			row.member.Name,
			row.member.Party,
			row.member.Constituency,
			row.donation.Amount,
			row.donation.InterestType,
			date,
			string(row.donation.Hours.State),
			hours,
			row.donation.RawText,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO donations (member, party, constituency, amount, interest_type, date_received, hours_state, annual_hours, raw_text)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
