// ABOUTME: CLI command showing aggregate usage statistics
// ABOUTME: Totals, most searched title, and language distribution
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/cinematch/internal/core"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate usage statistics",
		Long: `Show statistics derived from the recommendation history:
total searches, total recommendations given, the most searched title,
and the distribution of language preferences.`,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	stats, err := core.NewAggregator(history).Compute()
	if err != nil {
		return fmt.Errorf("computing statistics: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), stats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total searches:        %d\n", stats.TotalSearches)
	fmt.Fprintf(out, "Total recommendations: %d\n", stats.TotalRecommendations)
	if stats.MostSearched != "" {
		fmt.Fprintf(out, "Most searched:         %s (%d time(s))\n", stats.MostSearched, stats.MostSearchedCount)
	}

	if len(stats.LanguageDistribution) > 0 {
		fmt.Fprintf(out, "\nLanguage preferences:\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, lc := range stats.LanguageDistribution {
			fmt.Fprintf(w, "  %s\t%d\n", lc.Language, lc.Count)
		}
		w.Flush()
	}

	return nil
}
