package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/acollard/mp-register/internal/register"
	"github.com/acollard/mp-register/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagReportFormat string
	flagReportMember string
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize extracted records per member",
		Long: `Prints per-member totals from the snapshot: declared value, annualized
hours, and any entries whose payment and hours frequencies disagreed.
Members are ordered by total value, highest first.`,
		RunE: runReport,
	}

	cmd.Flags().StringVar(&flagReportFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagReportMember, "member", "", "Limit the report to one member (substring match)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagReportFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagReportFormat)
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
	if flagReportMember != "" {
		members = filterMembers(members, flagReportMember)
		if len(members) == 0 {
			return fmt.Errorf("no member matching %q in snapshot", flagReportMember)
		}
	}

	return WriteOutput(os.Stdout, BuildReport(members), format, flagVerbose)
}

func filterMembers(members []*register.Member, needle string) []*register.Member {
	needle = strings.ToLower(needle)
	var matched []*register.Member
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			matched = append(matched, m)
		}
	}
	return matched
}
