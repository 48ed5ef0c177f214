package cli

import (
	"fmt"

	"github.com/acollard/mp-register/internal/logger"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [member]",
		Short: "Re-run extraction from archived pages, without fetching",
		Long: `Re-runs record extraction against the locally archived register pages
and replaces each member's donation list in the snapshot. With a member
name argument only that member is re-extracted; without one, every
archived member is. Useful after tuning the extraction parameters.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, store, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	var names []string
	if len(args) == 1 {
		names = []string{args[0]}
	} else {
		snapshot, err := store.LoadSnapshot()
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		for _, m := range snapshot.SortedMembers() {
			names = append(names, m.Name)
		}
		if len(names) == 0 {
			return fmt.Errorf("snapshot in %s is empty; run scrape first", cfg.DataDir)
		}
	}

	for _, name := range names {
		m, err := p.Reextract(name)
		if err != nil {
			if len(args) == 1 {
				return fmt.Errorf("re-extracting %q: %w", name, err)
			}
			// In bulk mode a member without an archived page is skipped.
			logger.Warn("skipping member", logger.Fields{"member": name, "error": err.Error()})
			continue
		}
		fmt.Printf("%s: %d records, total £%.2f\n", m.Name, len(m.Donations), m.TotalValue())
	}

	return nil
}
