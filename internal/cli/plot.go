package cli

import (
	"fmt"

	"github.com/acollard/mp-register/internal/charts"
	"github.com/acollard/mp-register/internal/storage"
	"github.com/spf13/cobra"
)

var flagPlotOut string

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <scatter|party-bars|party-box>",
		Short: "Render charts of the extracted records",
		Long: `Renders a chart from the snapshot:

  scatter      per-member totals, coloured by party, outliers labelled
  party-bars   average declared value per party
  party-box    distribution of declared value per party`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"scatter", "party-bars", "party-box"},
		RunE:      runPlot,
	}

	cmd.Flags().StringVar(&flagPlotOut, "out", "", "Output PNG path (defaults to <kind>.png)")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	kind := args[0]
	out := flagPlotOut
	if out == "" {
		out = kind + ".png"
	}

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

	switch kind {
	case "scatter":
		err = charts.Scatter(members, charts.DefaultScatterOptions(), out)
	case "party-bars":
		err = charts.PartyBars(members, out)
	case "party-box":
		err = charts.PartyBox(members, out)
	default:
		return fmt.Errorf("unknown chart kind: %s", kind)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", kind, err)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
