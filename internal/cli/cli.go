package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/acollard/mp-register/internal/config"
	"github.com/acollard/mp-register/internal/extract"
	"github.com/acollard/mp-register/internal/fetch"
	"github.com/acollard/mp-register/internal/logger"
	"github.com/acollard/mp-register/internal/pipeline"
	"github.com/acollard/mp-register/internal/roster"
	"github.com/acollard/mp-register/internal/scraper"
	"github.com/acollard/mp-register/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagRoster  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mp-register",
		Short: "Extract and analyse financial interests declared by MPs",
		Long: `A CLI tool that scrapes the Register of Members' Financial Interests,
extracts donation and earnings records from the free-text entries, and
reports per-member totals. Pages are archived locally so extraction can
be re-run offline; results persist across runs and interrupted scrapes
resume where they stopped.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides DATA_DIR)")
	cmd.PersistentFlags().StringVar(&flagRoster, "roster", "", "Roster CSV path (overrides ROSTER_PATH)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newScrapeCmd(),
		newExtractCmd(),
		newReportCmd(),
		newExportCmd(),
		newPlotCmd(),
	)

	return cmd
}

// loadConfig reads the environment config and applies flag overrides.
func loadConfig() *config.Config {
	cfg := config.Load()
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagRoster != "" {
		cfg.RosterPath = flagRoster
	}
	return cfg
}

// loadRoster reads the member roster. A missing or unreadable roster is not
// fatal: members are still processed, with placeholder identity fields.
func loadRoster(cfg *config.Config) *roster.Roster {
	r, err := roster.Load(cfg.RosterPath)
	if err != nil {
		logger.Warn("roster unavailable, members will be unseeded", logger.Fields{
			"path":  cfg.RosterPath,
			"error": err.Error(),
		})
		return roster.Empty()
	}
	return r
}

func newFetcher(cfg *config.Config) fetch.Fetcher {
	if cfg.UseBrowser {
		return fetch.NewBrowser(cfg.ChromeBin, time.Duration(cfg.FetchWaitMs)*time.Millisecond)
	}
	return fetch.NewHTTP(cfg.FetchTimeout)
}

// newPipeline assembles the scrape pipeline from config.
func newPipeline(cfg *config.Config) (*pipeline.Pipeline, *storage.Storage, error) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(newFetcher(cfg), cfg.IndexURL, cfg.BaseURL)
	ex := extract.New(cfg.Extract())
	p := pipeline.New(sc, loadRoster(cfg), store, ex, time.Duration(cfg.RateLimitMs)*time.Millisecond)
	return p, store, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
