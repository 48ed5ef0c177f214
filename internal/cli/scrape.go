package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the register and extract every member's records",
		Long: `Fetches the register index, then processes each member page in turn:
the page is archived, donation records are extracted, and the snapshot is
saved before moving on. Members already in the snapshot are skipped, so an
interrupted scrape picks up where it left off.`,
		RunE: runScrape,
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, _, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshot, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	fmt.Printf("Scrape complete: %d members in snapshot.\n", len(snapshot.Members))
	return nil
}
