package cli

import (
	"fmt"

	"github.com/acollard/mp-register/internal/register"
	"github.com/acollard/mp-register/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagExportCSV      string
	flagExportPostgres bool
	flagExportReplace  bool
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export extracted records to CSV or PostgreSQL",
		Long: `Writes every donation record in the snapshot to a CSV file and,
optionally, to a PostgreSQL table. Postgres writes append to the donations
table unless --replace clears it first. Connection settings come from the
POSTGRES_* environment variables.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagExportCSV, "csv", "donations.csv", "CSV output path (empty to skip)")
	cmd.Flags().BoolVar(&flagExportPostgres, "postgres", false, "Also write to PostgreSQL")
	cmd.Flags().BoolVar(&flagExportReplace, "replace", false, "Clear the donations table before writing")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	snapshot, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	members := snapshot.SortedMembers()
	if len(members) == 0 {
		return fmt.Errorf("snapshot in %s is empty; run scrape first", cfg.DataDir)
	}

	if flagExportCSV != "" {
		w, err := storage.NewCSVWriter(flagExportCSV)
		if err != nil {
			return fmt.Errorf("opening CSV: %w", err)
		}
		if err := writeAndClose(w, members); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagExportCSV)
	}

	if flagExportPostgres {
		pw, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		if flagExportReplace {
			if err := pw.Clear(); err != nil {
				pw.Close()
				return fmt.Errorf("clearing donations table: %w", err)
			}
		}
		if err := writeAndClose(pw, members); err != nil {
			return fmt.Errorf("writing to postgres: %w", err)
		}
		fmt.Println("Wrote donations table")
	}

	return nil
}

func writeAndClose(w storage.DonationWriter, members []*register.Member) error {
	if err := w.Write(members); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
